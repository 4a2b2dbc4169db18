package evaluator

import (
	"fmt"

	"github.com/lucidlang/lucid/internal/ast"
)

// Clause is one alternative of a multi-clause function: a pattern per
// parameter, an optional guard, and a body expression.
type Clause struct {
	Params []ast.Pattern
	Guard  ast.Expression // nil if absent
	Body   ast.Expression
}

// NativeFunc is a host-provided handler; it receives the fully-applied
// argument vector and an interpreter handle for recursive calls (e.g.
// map/filter/fold need to re-enter ApplyFunction).
type NativeFunc func(i *Interpreter, args []Object) Object

// Function is the single callable value: FQN, arity, the already-bound
// argument prefix ("currying" state), and either a clause list (user
// function) or a native handler — exactly one of Clauses/Native is set.
//
// Function.AppliedArgs is carried inline on the value itself, matching
// the original runtime's FunctionValue.partial_args field, rather than
// wrapping partial application in a separate object: at every point
// AppliedArgs.length < Arity, and a call that reaches exactly Arity
// arguments dispatches and never produces another Function with the
// same identity.
type Function struct {
	FQN         *FQN
	Arity       int
	AppliedArgs []Object
	Clauses     []*Clause
	Native      NativeFunc
	Env         *Environment
}

func (f *Function) Type() ObjectType { return FunctionObj }

func (f *Function) Inspect() string {
	if f.FQN != nil && len(f.FQN.Parts) > 0 {
		return f.FQN.String()
	}
	return fmt.Sprintf("<function/%d>", f.Arity)
}

func (f *Function) Hash() uint32 {
	return hashString(fmt.Sprintf("fn:%s:%d:%d", f.Inspect(), f.Arity, len(f.AppliedArgs)))
}

func (f *Function) isNative() bool { return f.Native != nil }

// withAppliedArgs returns a new Function sharing everything but with
// AppliedArgs extended — the "partial application, return a new
// Function" branch of § 4.5.
func (f *Function) withAppliedArgs(args []Object) *Function {
	next := make([]Object, len(f.AppliedArgs)+len(args))
	copy(next, f.AppliedArgs)
	copy(next[len(f.AppliedArgs):], args)
	return &Function{
		FQN:         f.FQN,
		Arity:       f.Arity,
		AppliedArgs: next,
		Clauses:     f.Clauses,
		Native:      f.Native,
		Env:         f.Env,
	}
}
