package evaluator

// ApplyFunction is the single currying/dispatch entry point (§4.5): it
// receives already-evaluated arguments and a Function and either
// returns a new partially-applied Function, dispatches a fully-applied
// call, or recurses into the result for an over-application.
func (i *Interpreter) ApplyFunction(fn Object, args []Object) Object {
	f, ok := fn.(*Function)
	if !ok {
		return newException(KindType, "attempt to call a non-function value")
	}

	total := len(f.AppliedArgs) + len(args)

	if total < f.Arity {
		return f.withAppliedArgs(args)
	}

	if total == f.Arity {
		full := make([]Object, 0, f.Arity)
		full = append(full, f.AppliedArgs...)
		full = append(full, args...)
		return i.dispatch(f, full)
	}

	// Over-application: dispatch with exactly Arity arguments, then
	// recurse the remainder into whatever the dispatch returned (§4.5,
	// §9 Open Question 3).
	need := f.Arity - len(f.AppliedArgs)
	full := make([]Object, 0, f.Arity)
	full = append(full, f.AppliedArgs...)
	full = append(full, args[:need]...)
	result := i.dispatch(f, full)
	if isException(result) {
		return result
	}
	remainder := args[need:]
	if _, ok := result.(*Function); !ok {
		return newException(KindType, "over-application requires the result of the base call to be a Function")
	}
	return i.ApplyFunction(result, remainder)
}

// dispatch runs a fully-applied call: user clauses are tried in
// declaration order against the argument vector; a native handler is
// invoked directly.
func (i *Interpreter) dispatch(f *Function, args []Object) Object {
	if f.isNative() {
		return f.Native(i, args)
	}

	for _, clause := range f.Clauses {
		res := matchParams(clause.Params, args)
		if res.Exc != nil {
			return res.Exc
		}
		if !res.Ok {
			continue
		}
		frame := NewEnclosedEnvironment(f.Env)
		for name, val := range res.Bindings {
			frame.Set(name, val)
		}
		if clause.Guard != nil {
			g := i.Eval(clause.Guard, frame)
			if isException(g) {
				return g
			}
			gb, ok := g.(*Bool)
			if !ok {
				return newException(KindType, "guard must evaluate to Bool")
			}
			if !gb.Value {
				continue
			}
		}
		return i.Eval(clause.Body, frame)
	}
	return newException(KindNoMatch, "no function clause matched")
}
