package evaluator

// addTupleBuiltins wires the small fixed-arity accessors §4.8 expects
// for the Tuple tag (pattern matching covers the general case; these
// cover the common pair/triple access idiom).
func addTupleBuiltins(table map[string]*Function) {
	table["fst"] = nativeFn("fst", 1, func(_ *Interpreter, args []Object) Object {
		t, ok := args[0].(*Tuple)
		if !ok || len(t.Elements) < 2 {
			return typeError("fst", "Tuple of arity >= 2", args[0])
		}
		return t.Elements[0]
	})

	table["snd"] = nativeFn("snd", 1, func(_ *Interpreter, args []Object) Object {
		t, ok := args[0].(*Tuple)
		if !ok || len(t.Elements) < 2 {
			return typeError("snd", "Tuple of arity >= 2", args[0])
		}
		return t.Elements[1]
	})

	table["tupleSize"] = nativeFn("tupleSize", 1, func(_ *Interpreter, args []Object) Object {
		t, ok := args[0].(*Tuple)
		if !ok {
			return typeError("tupleSize", "Tuple", args[0])
		}
		return &Int{Value: int64(len(t.Elements))}
	})
}
