package evaluator

// addListBuiltins wires the list basics §4.8 requires at minimum.
func addListBuiltins(table map[string]*Function) {
	table["map"] = nativeFn("map", 2, func(i *Interpreter, args []Object) Object {
		fn := args[0]
		seq, ok := args[1].(*Seq)
		if !ok {
			return typeError("map", "Seq", args[1])
		}
		out := make([]Object, len(seq.Elements))
		for idx, el := range seq.Elements {
			v := i.ApplyFunction(fn, []Object{el})
			if isException(v) {
				return v
			}
			out[idx] = v
		}
		return &Seq{Elements: out}
	})

	table["filter"] = nativeFn("filter", 2, func(i *Interpreter, args []Object) Object {
		fn := args[0]
		seq, ok := args[1].(*Seq)
		if !ok {
			return typeError("filter", "Seq", args[1])
		}
		var out []Object
		for _, el := range seq.Elements {
			v := i.ApplyFunction(fn, []Object{el})
			if isException(v) {
				return v
			}
			b, ok := v.(*Bool)
			if !ok {
				return newException(KindType, "filter: predicate must return Bool")
			}
			if b.Value {
				out = append(out, el)
			}
		}
		return &Seq{Elements: out}
	})

	table["fold"] = nativeFn("fold", 3, func(i *Interpreter, args []Object) Object {
		fn := args[0]
		acc := args[1]
		seq, ok := args[2].(*Seq)
		if !ok {
			return typeError("fold", "Seq", args[2])
		}
		for _, el := range seq.Elements {
			v := i.ApplyFunction(fn, []Object{acc, el})
			if isException(v) {
				return v
			}
			acc = v
		}
		return acc
	})

	table["length"] = nativeFn("length", 1, func(_ *Interpreter, args []Object) Object {
		switch v := args[0].(type) {
		case *Seq:
			return &Int{Value: int64(len(v.Elements))}
		case *String:
			return &Int{Value: int64(len([]rune(v.Value)))}
		case *Set:
			return &Int{Value: int64(len(v.Elements))}
		case *Dict:
			return &Int{Value: int64(len(v.Pairs))}
		}
		return typeError("length", "Seq, String, Set, or Dict", args[0])
	})

	table["take"] = nativeFn("take", 2, func(_ *Interpreter, args []Object) Object {
		n, ok := asInt(args[0])
		if !ok {
			return typeError("take", "Int", args[0])
		}
		seq, ok := args[1].(*Seq)
		if !ok {
			return typeError("take", "Seq", args[1])
		}
		if n < 0 {
			return newException(KindRange, "take: negative count")
		}
		if n > int64(len(seq.Elements)) {
			n = int64(len(seq.Elements))
		}
		out := make([]Object, n)
		copy(out, seq.Elements[:n])
		return &Seq{Elements: out}
	})

	table["drop"] = nativeFn("drop", 2, func(_ *Interpreter, args []Object) Object {
		n, ok := asInt(args[0])
		if !ok {
			return typeError("drop", "Int", args[0])
		}
		seq, ok := args[1].(*Seq)
		if !ok {
			return typeError("drop", "Seq", args[1])
		}
		if n < 0 {
			return newException(KindRange, "drop: negative count")
		}
		if n > int64(len(seq.Elements)) {
			n = int64(len(seq.Elements))
		}
		out := make([]Object, int64(len(seq.Elements))-n)
		copy(out, seq.Elements[n:])
		return &Seq{Elements: out}
	})
}
