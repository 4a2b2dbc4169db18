package evaluator

import (
	"math"
	"strings"

	"github.com/lucidlang/lucid/internal/ast"
)

func (i *Interpreter) evalUnaryExpr(n *ast.UnaryExpr, env *Environment) Object {
	v := i.Eval(n.Operand, env)
	if isException(v) {
		return v
	}
	switch n.Op {
	case "!":
		b, ok := v.(*Bool)
		if !ok {
			return newException(KindType, "! requires Bool")
		}
		return nativeBoolToObject(!b.Value)
	case "~":
		switch val := v.(type) {
		case *Int:
			return &Int{Value: ^val.Value}
		case *Byte:
			return &Byte{Value: ^val.Value}
		}
		return newException(KindType, "~ requires Int or Byte")
	case "-":
		switch val := v.(type) {
		case *Int:
			return &Int{Value: -val.Value}
		case *Float:
			return &Float{Value: -val.Value}
		case *Byte:
			return &Int{Value: -int64(val.Value)}
		}
		return newException(KindType, "unary - requires a numeric operand")
	}
	return newException(KindType, "unknown unary operator "+n.Op)
}

// evalBinaryExpr dispatches every binary operator form (§4.3): both
// operands are evaluated before dispatch, except && and || which
// short-circuit.
func (i *Interpreter) evalBinaryExpr(n *ast.BinaryExpr, env *Environment) Object {
	switch n.Op {
	case "&&":
		l := i.Eval(n.Left, env)
		if isException(l) {
			return l
		}
		lb, ok := l.(*Bool)
		if !ok {
			return newException(KindType, "&& requires Bool operands")
		}
		if !lb.Value {
			return FalseObject
		}
		r := i.Eval(n.Right, env)
		if isException(r) {
			return r
		}
		if _, ok := r.(*Bool); !ok {
			return newException(KindType, "&& requires Bool operands")
		}
		return r
	case "||":
		l := i.Eval(n.Left, env)
		if isException(l) {
			return l
		}
		lb, ok := l.(*Bool)
		if !ok {
			return newException(KindType, "|| requires Bool operands")
		}
		if lb.Value {
			return TrueObject
		}
		r := i.Eval(n.Right, env)
		if isException(r) {
			return r
		}
		if _, ok := r.(*Bool); !ok {
			return newException(KindType, "|| requires Bool operands")
		}
		return r
	}

	left := i.Eval(n.Left, env)
	if isException(left) {
		return left
	}
	right := i.Eval(n.Right, env)
	if isException(right) {
		return right
	}
	return evalInfix(n.Op, left, right)
}

func evalInfix(op string, left, right Object) Object {
	switch op {
	case "+", "-", "*", "/", "%", "**":
		return evalArith(op, left, right)
	case "&", "|", "^", "<<", ">>", ">>>":
		return evalBitwise(op, left, right)
	case "==":
		return nativeBoolToObject(valuesEqual(left, right))
	case "!=":
		return nativeBoolToObject(!valuesEqual(left, right))
	case "<", "<=", ">", ">=":
		return evalOrdering(op, left, right)
	case "::":
		seq, ok := right.(*Seq)
		if !ok {
			return newException(KindType, ":: requires a Seq right operand")
		}
		return seq.prepend(left)
	case ":>":
		seq, ok := left.(*Seq)
		if !ok {
			return newException(KindType, ":> requires a Seq left operand")
		}
		return seq.appendOne(right)
	case "++":
		return evalConcat(left, right)
	case "in":
		return evalMembership(left, right)
	}
	return newException(KindType, "unknown operator "+op)
}

func evalArith(op string, left, right Object) Object {
	_, leftIsFloat := left.(*Float)
	_, rightIsFloat := right.(*Float)
	if leftIsFloat || rightIsFloat {
		lf, lok := asNumeric(left)
		rf, rok := asNumeric(right)
		if !lok || !rok {
			return newException(KindType, "arithmetic operand mismatch")
		}
		return arithFloat(op, lf, rf)
	}

	li, lok := asInt(left)
	ri, rok := asInt(right)
	if !lok || !rok {
		return newException(KindType, "arithmetic requires Int, Byte, or Float operands")
	}
	bothByte := left.Type() == ByteObj && right.Type() == ByteObj

	switch op {
	case "/":
		if ri == 0 {
			return newException(KindType, "division by zero")
		}
		return &Float{Value: float64(li) / float64(ri)}
	case "**":
		return &Float{Value: math.Pow(float64(li), float64(ri))}
	case "%":
		if ri == 0 {
			return newException(KindType, "modulo by zero")
		}
		if bothByte {
			return &Byte{Value: uint8(li % ri)}
		}
		return &Int{Value: li % ri}
	}

	var result int64
	switch op {
	case "+":
		result = li + ri
	case "-":
		result = li - ri
	case "*":
		result = li * ri
	}
	if bothByte {
		return &Byte{Value: uint8(result)}
	}
	return &Int{Value: result}
}

func arithFloat(op string, l, r float64) Object {
	switch op {
	case "+":
		return &Float{Value: l + r}
	case "-":
		return &Float{Value: l - r}
	case "*":
		return &Float{Value: l * r}
	case "/":
		return &Float{Value: l / r}
	case "**":
		return &Float{Value: math.Pow(l, r)}
	case "%":
		return &Float{Value: math.Mod(l, r)}
	}
	return newException(KindType, "unknown arithmetic operator "+op)
}

// asNumeric coerces Int, Byte, or Float to float64, for use once either
// operand of an arithmetic expression is Float (§4.3: the other side
// is coerced to Float and the result is Float).
func asNumeric(o Object) (float64, bool) {
	switch v := o.(type) {
	case *Float:
		return v.Value, true
	case *Int:
		return float64(v.Value), true
	case *Byte:
		return float64(v.Value), true
	}
	return 0, false
}

func asInt(o Object) (int64, bool) {
	switch v := o.(type) {
	case *Int:
		return v.Value, true
	case *Byte:
		return int64(v.Value), true
	}
	return 0, false
}

// evalBitwise implements §4.3's integral bitwise/shift operators,
// including >>>'s 32-bit-unsigned-reinterpret zero-fill shift.
func evalBitwise(op string, left, right Object) Object {
	li, lok := asInt(left)
	ri, rok := asInt(right)
	if !lok || !rok {
		return newException(KindType, "bitwise operators require Int or Byte operands")
	}
	bothByte := left.Type() == ByteObj && right.Type() == ByteObj

	var result int64
	switch op {
	case "&":
		result = li & ri
	case "|":
		result = li | ri
	case "^":
		result = li ^ ri
	case "<<":
		result = li << uint(ri)
	case ">>":
		result = li >> uint(ri)
	case ">>>":
		shifted := uint32(li) >> uint(ri)
		if bothByte {
			return &Byte{Value: uint8(shifted)}
		}
		return &Int{Value: int64(shifted)}
	default:
		return newException(KindType, "unknown bitwise operator "+op)
	}
	if bothByte {
		return &Byte{Value: uint8(result)}
	}
	return &Int{Value: result}
}

func evalOrdering(op string, left, right Object) Object {
	cmp, ok := compareOrder(left, right)
	if !ok {
		return newException(KindType, "comparison operand tags are not ordered")
	}
	switch op {
	case "<":
		return nativeBoolToObject(cmp < 0)
	case "<=":
		return nativeBoolToObject(cmp <= 0)
	case ">":
		return nativeBoolToObject(cmp > 0)
	case ">=":
		return nativeBoolToObject(cmp >= 0)
	}
	return newException(KindType, "unknown comparison operator "+op)
}

func evalConcat(left, right Object) Object {
	switch lv := left.(type) {
	case *Seq:
		rv, ok := right.(*Seq)
		if !ok {
			return newException(KindType, "++ requires both operands to be Seq")
		}
		return lv.concat(rv)
	case *String:
		rv, ok := right.(*String)
		if !ok {
			return newException(KindType, "++ requires both operands to be String")
		}
		return &String{Value: lv.Value + rv.Value}
	case *Set:
		rv, ok := right.(*Set)
		if !ok {
			return newException(KindType, "++ requires both operands to be Set")
		}
		return lv.union(rv)
	case *Dict:
		rv, ok := right.(*Dict)
		if !ok {
			return newException(KindType, "++ requires both operands to be Dict")
		}
		return lv.merge(rv)
	}
	return newException(KindType, "++ is not supported for this type")
}

func evalMembership(left, right Object) Object {
	switch c := right.(type) {
	case *Seq:
		for _, e := range c.Elements {
			if valuesEqual(e, left) {
				return TrueObject
			}
		}
		return FalseObject
	case *Set:
		return nativeBoolToObject(c.contains(left))
	case *Dict:
		_, ok := c.get(left)
		return nativeBoolToObject(ok)
	case *String:
		s, ok := left.(*String)
		if !ok {
			return newException(KindType, "in on a String requires a String needle")
		}
		return nativeBoolToObject(strings.Contains(c.Value, s.Value))
	}
	return newException(KindType, "in requires a Seq, Set, Dict, or String container")
}
