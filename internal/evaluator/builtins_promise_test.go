package evaluator

import "testing"

func TestPromiseResolveAwait(t *testing.T) {
	interp := newTestInterpreter()
	resolveFn := mustLookup(t, interp.Global, "resolve")
	awaitFn := mustLookup(t, interp.Global, "await")

	p := interp.ApplyFunction(resolveFn, []Object{&Int{Value: 7}})
	if _, ok := p.(*Promise); !ok {
		t.Fatalf("expected resolve to produce a *Promise, got %T", p)
	}
	v := interp.ApplyFunction(awaitFn, []Object{p})
	i, ok := v.(*Int)
	if !ok || i.Value != 7 {
		t.Fatalf("expected await(resolve(7)) = 7, got %s", v.Inspect())
	}
}

func TestPromiseRejectAwaitPropagatesException(t *testing.T) {
	interp := newTestInterpreter()
	rejectFn := mustLookup(t, interp.Global, "reject")
	awaitFn := mustLookup(t, interp.Global, "await")

	exc := raiseException(&Symbol{Name: "boom"}, &String{Value: "failed"})
	p := interp.ApplyFunction(rejectFn, []Object{exc})
	v := interp.ApplyFunction(awaitFn, []Object{p})
	got, ok := v.(*Exception)
	if !ok {
		t.Fatalf("expected await on a rejected promise to return its *Exception, got %T", v)
	}
	if got.Kind.Name != "boom" {
		t.Errorf("expected kind %q, got %q", "boom", got.Kind.Name)
	}
}

func TestIsPromise(t *testing.T) {
	interp := newTestInterpreter()
	resolveFn := mustLookup(t, interp.Global, "resolve")
	isPromiseFn := mustLookup(t, interp.Global, "isPromise")

	p := interp.ApplyFunction(resolveFn, []Object{&Int{Value: 1}})
	result := interp.ApplyFunction(isPromiseFn, []Object{p})
	b, ok := result.(*Bool)
	if !ok || !b.Value {
		t.Errorf("expected isPromise(resolve(1)) = true, got %s", result.Inspect())
	}
	result2 := interp.ApplyFunction(isPromiseFn, []Object{&Int{Value: 1}})
	b2, ok := result2.(*Bool)
	if !ok || b2.Value {
		t.Errorf("expected isPromise(1) = false, got %s", result2.Inspect())
	}
}
