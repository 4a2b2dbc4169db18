package evaluator

// Result is represented as an ordinary Record of type "Ok" (field
// "value") or "Err" (field "error"), mirroring the Option encoding in
// builtins_option.go.

func resultRecordTypes() []*RecordType {
	return []*RecordType{
		{Name: "Ok", Fields: []string{"value"}},
		{Name: "Err", Fields: []string{"error"}},
	}
}

func addResultBuiltins(table map[string]*Function) {
	table["ok"] = nativeFn("ok", 1, func(_ *Interpreter, args []Object) Object {
		return &Record{TypeName: "Ok", FieldNames: []string{"value"}, FieldValues: []Object{args[0]}}
	})

	table["err"] = nativeFn("err", 1, func(_ *Interpreter, args []Object) Object {
		return &Record{TypeName: "Err", FieldNames: []string{"error"}, FieldValues: []Object{args[0]}}
	})

	table["isOk"] = nativeFn("isOk", 1, func(_ *Interpreter, args []Object) Object {
		r, ok := args[0].(*Record)
		if !ok {
			return typeError("isOk", "Ok or Err record", args[0])
		}
		return nativeBoolToObject(r.TypeName == "Ok")
	})

	table["isErr"] = nativeFn("isErr", 1, func(_ *Interpreter, args []Object) Object {
		r, ok := args[0].(*Record)
		if !ok {
			return typeError("isErr", "Ok or Err record", args[0])
		}
		return nativeBoolToObject(r.TypeName == "Err")
	})

	table["unwrapOrResult"] = nativeFn("unwrapOrResult", 2, func(_ *Interpreter, args []Object) Object {
		r, ok := args[0].(*Record)
		if !ok {
			return typeError("unwrapOrResult", "Ok or Err record", args[0])
		}
		if r.TypeName == "Ok" {
			v, _ := r.getField("value")
			return v
		}
		return args[1]
	})
}
