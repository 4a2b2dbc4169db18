package evaluator

import "gopkg.in/yaml.v3"

// addYAMLBuiltins wires yamlEncode/yamlDecode onto gopkg.in/yaml.v3,
// converting between Object and plain Go values via objectToGo/
// goToObject below.
func addYAMLBuiltins(table map[string]*Function) {
	table["yamlEncode"] = nativeFn("yamlEncode", 1, func(_ *Interpreter, args []Object) Object {
		v, exc := objectToGo(args[0])
		if exc != nil {
			return exc
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return newException(KindType, "yamlEncode: "+err.Error())
		}
		return &String{Value: string(out)}
	})

	table["yamlDecode"] = nativeFn("yamlDecode", 1, func(_ *Interpreter, args []Object) Object {
		s, ok := args[0].(*String)
		if !ok {
			return typeError("yamlDecode", "String", args[0])
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(s.Value), &v); err != nil {
			return newException(KindType, "yamlDecode: "+err.Error())
		}
		return goToObject(v)
	})
}

// objectToGo converts an interpreter Object into the plain Go value
// yaml.Marshal expects, failing on tags with no sensible YAML shape
// (Function, Promise, Module).
func objectToGo(o Object) (interface{}, *Exception) {
	switch v := o.(type) {
	case *Int:
		return v.Value, nil
	case *Float:
		return v.Value, nil
	case *Byte:
		return int(v.Value), nil
	case *Char:
		return string(v.Value), nil
	case *String:
		return v.Value, nil
	case *Bool:
		return v.Value, nil
	case *Unit:
		return nil, nil
	case *Symbol:
		return ":" + v.Name, nil
	case *Tuple:
		return objectSliceToGo(v.Elements)
	case *Seq:
		return objectSliceToGo(v.Elements)
	case *Set:
		return objectSliceToGo(v.Elements)
	case *Dict:
		m := make(map[string]interface{}, len(v.Pairs))
		for _, p := range v.Pairs {
			key, ok := p.Key.(*String)
			if !ok {
				return nil, newException(KindType, "yamlEncode: Dict keys must be String")
			}
			val, exc := objectToGo(p.Value)
			if exc != nil {
				return nil, exc
			}
			m[key.Value] = val
		}
		return m, nil
	case *Record:
		m := make(map[string]interface{}, len(v.FieldNames)+1)
		m["__type"] = v.TypeName
		for i, n := range v.FieldNames {
			val, exc := objectToGo(v.FieldValues[i])
			if exc != nil {
				return nil, exc
			}
			m[n] = val
		}
		return m, nil
	}
	return nil, newException(KindType, "yamlEncode: cannot encode "+string(o.Type()))
}

func objectSliceToGo(elems []Object) ([]interface{}, *Exception) {
	out := make([]interface{}, len(elems))
	for i, e := range elems {
		v, exc := objectToGo(e)
		if exc != nil {
			return nil, exc
		}
		out[i] = v
	}
	return out, nil
}

// goToObject is the inverse of objectToGo for the subset yaml.v3
// produces when unmarshalling into interface{}: maps become Dict with
// String keys, sequences become Seq.
func goToObject(v interface{}) Object {
	switch x := v.(type) {
	case nil:
		return UnitObject
	case int:
		return &Int{Value: int64(x)}
	case int64:
		return &Int{Value: x}
	case float64:
		return &Float{Value: x}
	case bool:
		return nativeBoolToObject(x)
	case string:
		return &String{Value: x}
	case []interface{}:
		out := make([]Object, len(x))
		for i, e := range x {
			out[i] = goToObject(e)
		}
		return &Seq{Elements: out}
	case map[string]interface{}:
		pairs := make([]DictPair, 0, len(x))
		for k, val := range x {
			pairs = append(pairs, DictPair{Key: &String{Value: k}, Value: goToObject(val)})
		}
		return &Dict{Pairs: pairs}
	}
	return UnitObject
}
