package evaluator

// Option is represented as an ordinary Record of type "Some" (one field,
// "value") or "None" (no fields), reusing the existing Record machinery
// rather than inventing a dedicated Object kind.

func optionRecordTypes() []*RecordType {
	return []*RecordType{
		{Name: "Some", Fields: []string{"value"}},
		{Name: "None", Fields: nil},
	}
}

func addOptionBuiltins(table map[string]*Function) {
	table["some"] = nativeFn("some", 1, func(_ *Interpreter, args []Object) Object {
		return &Record{TypeName: "Some", FieldNames: []string{"value"}, FieldValues: []Object{args[0]}}
	})

	table["none"] = nativeFn("none", 0, func(_ *Interpreter, args []Object) Object {
		return &Record{TypeName: "None"}
	})

	table["isSome"] = nativeFn("isSome", 1, func(_ *Interpreter, args []Object) Object {
		r, ok := args[0].(*Record)
		if !ok {
			return typeError("isSome", "Some or None record", args[0])
		}
		return nativeBoolToObject(r.TypeName == "Some")
	})

	table["isNone"] = nativeFn("isNone", 1, func(_ *Interpreter, args []Object) Object {
		r, ok := args[0].(*Record)
		if !ok {
			return typeError("isNone", "Some or None record", args[0])
		}
		return nativeBoolToObject(r.TypeName == "None")
	})

	table["unwrapOr"] = nativeFn("unwrapOr", 2, func(_ *Interpreter, args []Object) Object {
		r, ok := args[0].(*Record)
		if !ok {
			return typeError("unwrapOr", "Some or None record", args[0])
		}
		if r.TypeName == "Some" {
			v, _ := r.getField("value")
			return v
		}
		return args[1]
	})
}
