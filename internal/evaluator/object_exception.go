package evaluator

// Exception is the single tagged-pair runtime value every raised error
// — system (":nomatch", ":type", ":field", ":arity", ":unbound",
// ":range", ":pattern", ":cycle") or user (`raise :sym msg`) — takes.
// It is propagated as an ordinary Go return value through Eval,
// evalCore, ApplyFunction and the pattern matcher's guard evaluation,
// mirroring the teacher's own *Error/isError return-value idiom rather
// than Go panic/recover: see DESIGN.md for the cross-grounding that
// led to this choice. Pattern non-match is a distinct, silent outcome
// (matchResult, in pattern.go) and is never represented as an
// Exception.
type Exception struct {
	Kind    *Symbol
	Payload Object
}

func (e *Exception) Type() ObjectType { return ExceptionObj }

func (e *Exception) Inspect() string {
	return e.Kind.Inspect() + " " + e.Payload.Inspect()
}

func (e *Exception) Hash() uint32 {
	return hashCombine(hashString("exception:"+e.Kind.Name), e.Payload)
}

// Error-kind symbols, § 7.
const (
	KindNoMatch = "nomatch"
	KindType    = "type"
	KindField   = "field"
	KindArity   = "arity"
	KindUnbound = "unbound"
	KindRange   = "range"
	KindPattern = "pattern"
	KindCycle   = "cycle"
)

func newException(kind string, message string) *Exception {
	return &Exception{Kind: &Symbol{Name: kind}, Payload: &String{Value: message}}
}

func raiseException(sym *Symbol, payload Object) *Exception {
	return &Exception{Kind: sym, Payload: payload}
}

// isException reports whether a just-evaluated result is an in-flight
// exception that must short-circuit the caller instead of being used
// as a value.
func isException(obj Object) bool {
	_, ok := obj.(*Exception)
	return ok
}
