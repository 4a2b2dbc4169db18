package evaluator

import "github.com/lucidlang/lucid/internal/ast"

func (i *Interpreter) evalDictExpr(n *ast.DictExpr, env *Environment) Object {
	pairs := make([]DictPair, 0, len(n.Entries))
	for _, e := range n.Entries {
		k := i.Eval(e.Key, env)
		if isException(k) {
			return k
		}
		v := i.Eval(e.Value, env)
		if isException(v) {
			return v
		}
		pairs = append(pairs, DictPair{Key: k, Value: v})
	}
	d := &Dict{}
	for _, p := range pairs {
		d = d.put(p.Key, p.Value)
	}
	return d
}

// evalRangeExpr implements §4.3's range semantics: integer ranges
// default to step +1/-1 based on endpoint order, generate inclusive of
// b while the step-appropriate comparison holds, and a zero step
// raises :range. Float ranges default to step 1.0 and accumulate by
// addition with no adaptive fixup.
func (i *Interpreter) evalRangeExpr(n *ast.RangeExpr, env *Environment) Object {
	start := i.Eval(n.Start, env)
	if isException(start) {
		return start
	}
	end := i.Eval(n.End, env)
	if isException(end) {
		return end
	}
	var step Object
	if n.Step != nil {
		step = i.Eval(n.Step, env)
		if isException(step) {
			return step
		}
	}

	if sf, ok := asNumeric(start); ok {
		ef, eok := asNumeric(end)
		if !eok {
			return newException(KindType, "range endpoints must both be numeric")
		}
		_, startIsFloat := start.(*Float)
		_, endIsFloat := end.(*Float)
		isFloatRange := startIsFloat || endIsFloat
		if step != nil {
			if _, ok := step.(*Float); ok {
				isFloatRange = true
			}
		}
		if isFloatRange {
			st := 1.0
			if step != nil {
				sv, ok := asNumeric(step)
				if !ok {
					return newException(KindType, "range step must be numeric")
				}
				st = sv
			}
			if st == 0 {
				return newException(KindRange, "range step must not be zero")
			}
			return floatRange(sf, ef, st)
		}

		st := int64(1)
		if sf > ef {
			st = -1
		}
		if step != nil {
			sv, ok := asInt(step)
			if !ok {
				return newException(KindType, "range step must be an integer")
			}
			st = sv
		}
		if st == 0 {
			return newException(KindRange, "range step must not be zero")
		}
		return intRange(int64(sf), int64(ef), st)
	}

	return newException(KindType, "range endpoints must be numeric")
}

func intRange(a, b, step int64) *Seq {
	var elems []Object
	if step > 0 {
		for v := a; v <= b; v += step {
			elems = append(elems, &Int{Value: v})
		}
	} else {
		for v := a; v >= b; v += step {
			elems = append(elems, &Int{Value: v})
		}
	}
	return &Seq{Elements: elems}
}

func floatRange(a, b, step float64) *Seq {
	var elems []Object
	if step > 0 {
		for v := a; v <= b; v += step {
			elems = append(elems, &Float{Value: v})
		}
	} else {
		for v := a; v >= b; v += step {
			elems = append(elems, &Float{Value: v})
		}
	}
	return &Seq{Elements: elems}
}

// evalGeneratorExpr implements §4.3's sequence/set/dict comprehensions.
func (i *Interpreter) evalGeneratorExpr(n *ast.GeneratorExpr, env *Environment) Object {
	src := i.Eval(n.Source, env)
	if isException(src) {
		return src
	}
	var elements []Object
	switch s := src.(type) {
	case *Seq:
		elements = s.Elements
	case *Set:
		elements = s.Elements
	case *Dict:
		for _, p := range s.Pairs {
			elements = append(elements, &Tuple{Elements: []Object{p.Key, p.Value}})
		}
	default:
		return newException(KindType, "generator source must be a Seq, Set, or Dict")
	}

	switch n.Kind {
	case ast.GenSeq:
		out := make([]Object, 0, len(elements))
		for _, el := range elements {
			frame, exc := bindExtractor(n.Extractor, el, env)
			if exc != nil {
				return exc
			}
			v := i.Eval(n.ValueExpr, frame)
			if isException(v) {
				return v
			}
			out = append(out, v)
		}
		return &Seq{Elements: out}

	case ast.GenSet:
		result := &Set{}
		for _, el := range elements {
			frame, exc := bindExtractor(n.Extractor, el, env)
			if exc != nil {
				return exc
			}
			v := i.Eval(n.ValueExpr, frame)
			if isException(v) {
				return v
			}
			result = result.add(v)
		}
		return result

	case ast.GenDict:
		result := &Dict{}
		for _, el := range elements {
			frame, exc := bindExtractor(n.Extractor, el, env)
			if exc != nil {
				return exc
			}
			k := i.Eval(n.KeyExpr, frame)
			if isException(k) {
				return k
			}
			v := i.Eval(n.ValueExpr, frame)
			if isException(v) {
				return v
			}
			result = result.put(k, v)
		}
		return result
	}
	return newException(KindType, "unknown generator kind")
}

func bindExtractor(pat ast.Pattern, v Object, env *Environment) (*Environment, *Exception) {
	res := match(pat, v, map[string]Object{})
	if res.Exc != nil {
		return nil, res.Exc
	}
	if !res.Ok {
		return nil, newException(KindNoMatch, "generator extractor pattern did not match")
	}
	frame := NewEnclosedEnvironment(env)
	for name, val := range res.Bindings {
		frame.Set(name, val)
	}
	return frame, nil
}
