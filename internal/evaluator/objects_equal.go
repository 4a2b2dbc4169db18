package evaluator

// valuesEqual implements the structural, type-sensitive equality of
// §3/§4.3: values of distinct tags are never equal (no arithmetic
// coercion under ==), Seq/Tuple compare element-wise, Set/Dict compare
// order-insensitively, and Record requires matching type names.
func valuesEqual(a, b Object) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Int:
		return av.Value == b.(*Int).Value
	case *Float:
		return av.Value == b.(*Float).Value
	case *Byte:
		return av.Value == b.(*Byte).Value
	case *Char:
		return av.Value == b.(*Char).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Bool:
		return av.Value == b.(*Bool).Value
	case *Unit:
		return true
	case *Symbol:
		return av.Name == b.(*Symbol).Name
	case *Tuple:
		bv := b.(*Tuple)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Seq:
		bv := b.(*Seq)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Set:
		bv := b.(*Set)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for _, e := range av.Elements {
			if !bv.contains(e) {
				return false
			}
		}
		return true
	case *Dict:
		bv := b.(*Dict)
		if len(av.Pairs) != len(bv.Pairs) {
			return false
		}
		for _, p := range av.Pairs {
			other, ok := bv.get(p.Key)
			if !ok || !valuesEqual(p.Value, other) {
				return false
			}
		}
		return true
	case *Record:
		bv := b.(*Record)
		if av.TypeName != bv.TypeName || len(av.FieldNames) != len(bv.FieldNames) {
			return false
		}
		for i, name := range av.FieldNames {
			ov, ok := bv.getField(name)
			if !ok || !valuesEqual(av.FieldValues[i], ov) {
				return false
			}
		}
		return true
	case *FQN:
		bv := b.(*FQN)
		if len(av.Parts) != len(bv.Parts) {
			return false
		}
		for i := range av.Parts {
			if av.Parts[i] != bv.Parts[i] {
				return false
			}
		}
		return true
	case *Module:
		return av == b.(*Module)
	case *Function:
		return av == b.(*Function)
	default:
		return false
	}
}

// compareOrder returns -1, 0, 1 for ordering comparisons (<, <=, >,
// >=). Ordering is only defined for numeric, character, string
// (lexicographic) and byte; callers must raise :type otherwise.
func compareOrder(a, b Object) (int, bool) {
	switch av := a.(type) {
	case *Int:
		switch bv := b.(type) {
		case *Int:
			return cmpInt64(av.Value, bv.Value), true
		case *Float:
			return cmpFloat64(float64(av.Value), bv.Value), true
		case *Byte:
			return cmpInt64(av.Value, int64(bv.Value)), true
		}
	case *Float:
		switch bv := b.(type) {
		case *Int:
			return cmpFloat64(av.Value, float64(bv.Value)), true
		case *Float:
			return cmpFloat64(av.Value, bv.Value), true
		case *Byte:
			return cmpFloat64(av.Value, float64(bv.Value)), true
		}
	case *Byte:
		switch bv := b.(type) {
		case *Byte:
			return cmpInt64(int64(av.Value), int64(bv.Value)), true
		case *Int:
			return cmpInt64(int64(av.Value), bv.Value), true
		case *Float:
			return cmpFloat64(float64(av.Value), bv.Value), true
		}
	case *Char:
		if bv, ok := b.(*Char); ok {
			return cmpInt64(int64(av.Value), int64(bv.Value)), true
		}
	case *String:
		if bv, ok := b.(*String); ok {
			switch {
			case av.Value < bv.Value:
				return -1, true
			case av.Value > bv.Value:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return 0, false
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
