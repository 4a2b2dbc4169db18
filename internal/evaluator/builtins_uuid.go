package evaluator

import "github.com/google/uuid"

// addUUIDBuiltins wires a single uuid() builtin onto google/uuid,
// exercising the teacher's own direct dependency.
func addUUIDBuiltins(table map[string]*Function) {
	table["uuid"] = nativeFn("uuid", 0, func(_ *Interpreter, args []Object) Object {
		return &String{Value: uuid.NewString()}
	})
}
