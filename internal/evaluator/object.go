package evaluator

import "hash/fnv"

// ObjectType tags the dynamic type of a runtime value.
type ObjectType string

const (
	IntObj       ObjectType = "INT"
	FloatObj     ObjectType = "FLOAT"
	ByteObj      ObjectType = "BYTE"
	CharObj      ObjectType = "CHAR"
	StringObj    ObjectType = "STRING"
	BoolObj      ObjectType = "BOOL"
	UnitObj      ObjectType = "UNIT"
	SymbolObj    ObjectType = "SYMBOL"
	TupleObj     ObjectType = "TUPLE"
	SeqObj       ObjectType = "SEQ"
	SetObj       ObjectType = "SET"
	DictObj      ObjectType = "DICT"
	RecordObj    ObjectType = "RECORD"
	FQNObj       ObjectType = "FQN"
	ModuleObj    ObjectType = "MODULE"
	FunctionObj  ObjectType = "FUNCTION"
	ExceptionObj ObjectType = "EXCEPTION"
	PromiseObj   ObjectType = "PROMISE"
)

// Object is the runtime value interface every tagged-union member
// implements. There is deliberately no RuntimeType() method here: static
// typing is an external collaborator, consulted (if at all) before
// evaluation, not during it.
type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// hashCombine folds a child hash into a running hash, the same
// multiply-and-add scheme every composite runtime value uses.
func hashCombine(h uint32, elem Object) uint32 {
	return 31*h + elem.Hash()
}
