package evaluator

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// addConsoleBuiltins wires print/println (§4.8).
func addConsoleBuiltins(table map[string]*Function) {
	table["print"] = nativeFn("print", 1, func(_ *Interpreter, args []Object) Object {
		if len(args) != 1 {
			return arityError("print")
		}
		fmt.Fprint(os.Stdout, inspectForDisplay(args[0]))
		return UnitObject
	})
	table["println"] = nativeFn("println", 1, func(_ *Interpreter, args []Object) Object {
		if len(args) != 1 {
			return arityError("println")
		}
		fmt.Fprintln(os.Stdout, inspectForDisplay(args[0]))
		return UnitObject
	})
}

// inspectForDisplay prints String values verbatim (no surrounding
// quoting) while every other tag uses its normal Inspect form, per
// §6's diagnostics table.
func inspectForDisplay(o Object) string {
	if s, ok := o.(*String); ok {
		return s.Value
	}
	return o.Inspect()
}

// addFileBuiltins wires readFile/writeFile/fileExists and a
// go-humanize-backed fileSizeHuman builtin (SPEC_FULL.md DOMAIN STACK).
func addFileBuiltins(table map[string]*Function) {
	table["readFile"] = nativeFn("readFile", 1, func(_ *Interpreter, args []Object) Object {
		path, ok := args[0].(*String)
		if !ok {
			return typeError("readFile", "String", args[0])
		}
		data, err := os.ReadFile(path.Value)
		if err != nil {
			return raiseException(&Symbol{Name: "io_error"}, &String{Value: err.Error()})
		}
		return &String{Value: string(data)}
	})

	table["writeFile"] = nativeFn("writeFile", 2, func(_ *Interpreter, args []Object) Object {
		path, ok := args[0].(*String)
		if !ok {
			return typeError("writeFile", "String", args[0])
		}
		content, ok := args[1].(*String)
		if !ok {
			return typeError("writeFile", "String", args[1])
		}
		if err := os.WriteFile(path.Value, []byte(content.Value), 0o644); err != nil {
			return raiseException(&Symbol{Name: "io_error"}, &String{Value: err.Error()})
		}
		return UnitObject
	})

	table["fileExists"] = nativeFn("fileExists", 1, func(_ *Interpreter, args []Object) Object {
		path, ok := args[0].(*String)
		if !ok {
			return typeError("fileExists", "String", args[0])
		}
		_, err := os.Stat(path.Value)
		return nativeBoolToObject(err == nil)
	})

	// fileSizeHuman formats a byte-count Int using go-humanize, e.g.
	// fileSizeHuman(4200000) -> "4.2 MB" — grounded on funxy's own
	// direct dependency, exercised here by the file-IO builtin group.
	table["fileSizeHuman"] = nativeFn("fileSizeHuman", 1, func(_ *Interpreter, args []Object) Object {
		n, ok := asInt(args[0])
		if !ok {
			return typeError("fileSizeHuman", "Int", args[0])
		}
		if n < 0 {
			return newException(KindRange, "fileSizeHuman: negative size")
		}
		return &String{Value: humanize.Bytes(uint64(n))}
	})
}
