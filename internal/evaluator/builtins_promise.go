package evaluator

// addPromiseBuiltins wires the stubbed async layer's library surface
// (§5, §9): resolve/reject construct an already-settled Promise and
// await unwraps one. Core evaluation stays synchronous — there is no
// suspension point here, only the value-level plumbing a future
// revision's work-pool would produce already-settled values through.
func addPromiseBuiltins(table map[string]*Function) {
	table["resolve"] = nativeFn("resolve", 1, func(_ *Interpreter, args []Object) Object {
		return resolvedPromise(args[0])
	})

	table["reject"] = nativeFn("reject", 1, func(_ *Interpreter, args []Object) Object {
		exc, ok := args[0].(*Exception)
		if !ok {
			return typeError("reject", "Exception", args[0])
		}
		return rejectedPromise(exc)
	})

	table["await"] = nativeFn("await", 1, func(i *Interpreter, args []Object) Object {
		p, ok := args[0].(*Promise)
		if !ok {
			return typeError("await", "Promise", args[0])
		}
		return p.Await(i.ctx)
	})

	table["isPromise"] = nativeFn("isPromise", 1, func(_ *Interpreter, args []Object) Object {
		_, ok := args[0].(*Promise)
		return nativeBoolToObject(ok)
	})
}
