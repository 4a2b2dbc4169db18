package evaluator

import "testing"

func mustLookup(t *testing.T, env *Environment, name string) *Function {
	t.Helper()
	v, ok := env.Get(name)
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	fn, ok := v.(*Function)
	if !ok {
		t.Fatalf("builtin %q is not a Function: %T", name, v)
	}
	return fn
}

func TestListBuiltins(t *testing.T) {
	interp := newTestInterpreter()
	env := interp.Global

	double := &Function{Arity: 1, Native: func(_ *Interpreter, args []Object) Object {
		n := args[0].(*Int)
		return &Int{Value: n.Value * 2}
	}}
	seq := &Seq{Elements: []Object{&Int{Value: 1}, &Int{Value: 2}, &Int{Value: 3}}}

	mapped := interp.ApplyFunction(mustLookup(t, env, "map"), []Object{double, seq})
	mseq, ok := mapped.(*Seq)
	if !ok || len(mseq.Elements) != 3 || mseq.Elements[1].(*Int).Value != 4 {
		t.Fatalf("map double [1,2,3] = %v, want [2,4,6]", mapped.Inspect())
	}

	isEven := &Function{Arity: 1, Native: func(_ *Interpreter, args []Object) Object {
		n := args[0].(*Int)
		return nativeBoolToObject(n.Value%2 == 0)
	}}
	filtered := interp.ApplyFunction(mustLookup(t, env, "filter"), []Object{isEven, seq})
	fseq, ok := filtered.(*Seq)
	if !ok || len(fseq.Elements) != 1 || fseq.Elements[0].(*Int).Value != 2 {
		t.Fatalf("filter isEven [1,2,3] = %v, want [2]", filtered.Inspect())
	}

	plus := &Function{Arity: 2, Native: func(_ *Interpreter, args []Object) Object {
		a, b := args[0].(*Int), args[1].(*Int)
		return &Int{Value: a.Value + b.Value}
	}}
	folded := interp.ApplyFunction(mustLookup(t, env, "fold"), []Object{plus, &Int{Value: 0}, seq})
	fi, ok := folded.(*Int)
	if !ok || fi.Value != 6 {
		t.Fatalf("fold (+) 0 [1,2,3] = %v, want 6", folded.Inspect())
	}

	length := interp.ApplyFunction(mustLookup(t, env, "length"), []Object{seq})
	if li, ok := length.(*Int); !ok || li.Value != 3 {
		t.Fatalf("length [1,2,3] = %v, want 3", length.Inspect())
	}

	taken := interp.ApplyFunction(mustLookup(t, env, "take"), []Object{&Int{Value: 2}, seq})
	if tseq, ok := taken.(*Seq); !ok || len(tseq.Elements) != 2 {
		t.Fatalf("take 2 [1,2,3] = %v, want [1,2]", taken.Inspect())
	}

	dropped := interp.ApplyFunction(mustLookup(t, env, "drop"), []Object{&Int{Value: 2}, seq})
	if dseq, ok := dropped.(*Seq); !ok || len(dseq.Elements) != 1 || dseq.Elements[0].(*Int).Value != 3 {
		t.Fatalf("drop 2 [1,2,3] = %v, want [3]", dropped.Inspect())
	}
}

func TestOptionBuiltins(t *testing.T) {
	interp := newTestInterpreter()
	env := interp.Global

	some := interp.ApplyFunction(mustLookup(t, env, "some"), []Object{&Int{Value: 5}})
	if v := interp.ApplyFunction(mustLookup(t, env, "isSome"), []Object{some}); v.(*Bool).Value != true {
		t.Errorf("isSome(some(5)) = %v, want true", v.Inspect())
	}
	if v := interp.ApplyFunction(mustLookup(t, env, "unwrapOr"), []Object{some, &Int{Value: 0}}); v.(*Int).Value != 5 {
		t.Errorf("unwrapOr(some(5), 0) = %v, want 5", v.Inspect())
	}

	none := interp.ApplyFunction(mustLookup(t, env, "none"), nil)
	if v := interp.ApplyFunction(mustLookup(t, env, "isNone"), []Object{none}); v.(*Bool).Value != true {
		t.Errorf("isNone(none()) = %v, want true", v.Inspect())
	}
	if v := interp.ApplyFunction(mustLookup(t, env, "unwrapOr"), []Object{none, &Int{Value: 42}}); v.(*Int).Value != 42 {
		t.Errorf("unwrapOr(none(), 42) = %v, want 42", v.Inspect())
	}
}

func TestResultBuiltins(t *testing.T) {
	interp := newTestInterpreter()
	env := interp.Global

	okVal := interp.ApplyFunction(mustLookup(t, env, "ok"), []Object{&Int{Value: 1}})
	if v := interp.ApplyFunction(mustLookup(t, env, "isOk"), []Object{okVal}); v.(*Bool).Value != true {
		t.Errorf("isOk(ok(1)) = %v, want true", v.Inspect())
	}

	errVal := interp.ApplyFunction(mustLookup(t, env, "err"), []Object{&String{Value: "bad"}})
	if v := interp.ApplyFunction(mustLookup(t, env, "isErr"), []Object{errVal}); v.(*Bool).Value != true {
		t.Errorf("isErr(err(\"bad\")) = %v, want true", v.Inspect())
	}
}

func TestTupleBuiltins(t *testing.T) {
	interp := newTestInterpreter()
	env := interp.Global
	tup := &Tuple{Elements: []Object{&Int{Value: 1}, &String{Value: "two"}}}

	if v := interp.ApplyFunction(mustLookup(t, env, "fst"), []Object{tup}); v.(*Int).Value != 1 {
		t.Errorf("fst((1, \"two\")) = %v, want 1", v.Inspect())
	}
	if v := interp.ApplyFunction(mustLookup(t, env, "snd"), []Object{tup}); v.(*String).Value != "two" {
		t.Errorf("snd((1, \"two\")) = %v, want \"two\"", v.Inspect())
	}
}
