package evaluator

import (
	"github.com/funvibe/funbit"
)

// addBitsBuiltins wires bitsPack/bitsUnpack onto funvibe/funbit's
// Erlang-style bit-syntax builder/parser, exercising the teacher's own
// direct dependency (kept in go.mod but never reached by any teacher
// source file in the retrieved pack) against a Seq of byte-sized Ints.
func addBitsBuiltins(table map[string]*Function) {
	table["bitsPack"] = nativeFn("bitsPack", 1, func(_ *Interpreter, args []Object) Object {
		seq, ok := args[0].(*Seq)
		if !ok {
			return typeError("bitsPack", "Seq of Int", args[0])
		}
		builder := funbit.NewBuilder()
		for _, el := range seq.Elements {
			n, ok := asInt(el)
			if !ok {
				return typeError("bitsPack", "Seq of Int", el)
			}
			builder.AddInteger(n, funbit.WithSize(8))
		}
		bs, err := builder.Build()
		if err != nil {
			return newException(KindType, "bitsPack: "+err.Error())
		}
		out := make([]Object, len(bs))
		for idx, b := range bs {
			out[idx] = &Byte{Value: b}
		}
		return &Seq{Elements: out}
	})

	table["bitsUnpack"] = nativeFn("bitsUnpack", 1, func(_ *Interpreter, args []Object) Object {
		seq, ok := args[0].(*Seq)
		if !ok {
			return typeError("bitsUnpack", "Seq of Byte", args[0])
		}
		raw := make([]byte, len(seq.Elements))
		for idx, el := range seq.Elements {
			b, ok := el.(*Byte)
			if !ok {
				return typeError("bitsUnpack", "Seq of Byte", el)
			}
			raw[idx] = b.Value
		}
		parser := funbit.NewParser(raw)
		out := make([]Object, 0, len(raw))
		for i := 0; i < len(raw); i++ {
			v, err := parser.ReadInteger(funbit.WithSize(8))
			if err != nil {
				return newException(KindType, "bitsUnpack: "+err.Error())
			}
			out = append(out, &Int{Value: int64(v)})
		}
		return &Seq{Elements: out}
	})
}
