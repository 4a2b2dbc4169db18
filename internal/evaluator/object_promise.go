package evaluator

import "context"

// PromiseState is one of Pending, Fulfilled, Rejected.
type PromiseState int

const (
	Pending PromiseState = iota
	Fulfilled
	Rejected
)

// Promise is the stub async surface: core evaluation is synchronous
// (§5), so a Promise here is always constructed already-resolved — it
// exists as a library-surface value, not as a suspension mechanism.
// The work-pool that would fulfill promises asynchronously is the
// named external collaborator; Await simply unwraps what is already
// there.
type Promise struct {
	State PromiseState
	Value Object // valid when Fulfilled
	Err   *Exception // valid when Rejected
}

func (p *Promise) Type() ObjectType { return PromiseObj }

func (p *Promise) Inspect() string {
	switch p.State {
	case Fulfilled:
		return "Promise(fulfilled, " + p.Value.Inspect() + ")"
	case Rejected:
		return "Promise(rejected, " + p.Err.Inspect() + ")"
	default:
		return "Promise(pending)"
	}
}

func (p *Promise) Hash() uint32 { return hashString(p.Inspect()) }

func resolvedPromise(v Object) *Promise { return &Promise{State: Fulfilled, Value: v} }

func rejectedPromise(e *Exception) *Promise { return &Promise{State: Rejected, Err: e} }

// Await returns the promise's value, or its rejection exception. Since
// promises are always already-settled in the synchronous core, ctx is
// accepted only for interface symmetry with a future asynchronous
// revision and is never blocked on here.
func (p *Promise) Await(_ context.Context) Object {
	switch p.State {
	case Fulfilled:
		return p.Value
	case Rejected:
		return p.Err
	default:
		return newException(KindType, "await on a promise that never settled")
	}
}
