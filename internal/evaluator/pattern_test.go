package evaluator

import (
	"testing"

	"github.com/lucidlang/lucid/internal/ast"
)

func TestCaseExprDispatchesInOrder(t *testing.T) {
	// case (1, 2) of (0, y) -> y | (x, y) -> x + y  =>  3
	scrutinee := &ast.TupleExpr{Elements: []ast.Expression{&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2}}}
	clauses := []*ast.CaseClause{
		{
			Pattern: &ast.TuplePattern{Elements: []ast.Pattern{
				&ast.LiteralPattern{Value: &ast.IntLiteral{Value: 0}},
				&ast.IdentifierPattern{Name: "y"},
			}},
			Body: &ast.Identifier{Name: "y"},
		},
		{
			Pattern: &ast.TuplePattern{Elements: []ast.Pattern{
				&ast.IdentifierPattern{Name: "x"},
				&ast.IdentifierPattern{Name: "y"},
			}},
			Body: &ast.BinaryExpr{Op: "+", Left: &ast.Identifier{Name: "x"}, Right: &ast.Identifier{Name: "y"}},
		},
	}
	expr := &ast.CaseExpr{Scrutinee: scrutinee, Clauses: clauses}

	interp := newTestInterpreter()
	result := interp.Eval(expr, interp.Global)
	i, ok := result.(*Int)
	if !ok {
		t.Fatalf("expected *Int, got %T (%s)", result, result.Inspect())
	}
	if i.Value != 3 {
		t.Errorf("got %d, want 3", i.Value)
	}
}

func TestOrPatternNameSetMismatchRaisesPattern(t *testing.T) {
	// (x | (x, y)) — alternatives bind different name sets: must raise :pattern.
	or := &ast.OrPattern{Alternatives: []ast.Pattern{
		&ast.IdentifierPattern{Name: "x"},
		&ast.TuplePattern{Elements: []ast.Pattern{&ast.IdentifierPattern{Name: "x"}, &ast.IdentifierPattern{Name: "y"}}},
	}}
	res := match(or, &Int{Value: 1}, map[string]Object{})
	if res.Exc == nil {
		t.Fatalf("expected a :pattern exception, got ok=%v bindings=%v", res.Ok, res.Bindings)
	}
	if res.Exc.Kind.Name != KindPattern {
		t.Errorf("expected kind %q, got %q", KindPattern, res.Exc.Kind.Name)
	}
}

// TestOrPatternConsistentNamesBindAcrossAlternatives covers the
// success half of or-pattern matching (SPEC_FULL.md §4.11): every
// alternative binds the same name set, and whichever alternative
// actually matches propagates its own binding for that name.
func TestOrPatternConsistentNamesBindAcrossAlternatives(t *testing.T) {
	// (x, 1) | (x, 2) -> x
	or := &ast.OrPattern{Alternatives: []ast.Pattern{
		&ast.TuplePattern{Elements: []ast.Pattern{
			&ast.IdentifierPattern{Name: "x"},
			&ast.LiteralPattern{Value: &ast.IntLiteral{Value: 1}},
		}},
		&ast.TuplePattern{Elements: []ast.Pattern{
			&ast.IdentifierPattern{Name: "x"},
			&ast.LiteralPattern{Value: &ast.IntLiteral{Value: 2}},
		}},
	}}

	cases := []struct {
		name  string
		tuple *Tuple
		wantX int64
	}{
		{"matches first alternative", &Tuple{Elements: []Object{&Int{Value: 5}, &Int{Value: 1}}}, 5},
		{"matches second alternative", &Tuple{Elements: []Object{&Int{Value: 9}, &Int{Value: 2}}}, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := match(or, c.tuple, map[string]Object{})
			if res.Exc != nil {
				t.Fatalf("unexpected exception: %s", res.Exc.Inspect())
			}
			if !res.Ok {
				t.Fatalf("expected match to succeed")
			}
			x, ok := res.Bindings["x"].(*Int)
			if !ok || x.Value != c.wantX {
				t.Errorf("expected x = %d, got %v", c.wantX, res.Bindings["x"])
			}
		})
	}

	t.Run("neither alternative matches", func(t *testing.T) {
		res := match(or, &Tuple{Elements: []Object{&Int{Value: 5}, &Int{Value: 3}}}, map[string]Object{})
		if res.Exc != nil {
			t.Fatalf("unexpected exception: %s", res.Exc.Inspect())
		}
		if res.Ok {
			t.Fatalf("expected no match, got bindings %v", res.Bindings)
		}
	})
}

func TestHeadTailPattern(t *testing.T) {
	seq := &Seq{Elements: []Object{&Int{Value: 1}, &Int{Value: 2}, &Int{Value: 3}}}
	pat := &ast.HeadTailPattern{Head: &ast.IdentifierPattern{Name: "h"}, Tail: &ast.IdentifierPattern{Name: "t"}}
	res := match(pat, seq, map[string]Object{})
	if res.Exc != nil {
		t.Fatalf("unexpected exception: %s", res.Exc.Inspect())
	}
	if !res.Ok {
		t.Fatalf("expected match to succeed")
	}
	h, ok := res.Bindings["h"].(*Int)
	if !ok || h.Value != 1 {
		t.Errorf("expected h = 1, got %v", res.Bindings["h"])
	}
	tail, ok := res.Bindings["t"].(*Seq)
	if !ok || len(tail.Elements) != 2 {
		t.Errorf("expected t = [2, 3], got %v", res.Bindings["t"])
	}
}

func TestStructuralEquality(t *testing.T) {
	a := &Seq{Elements: []Object{&Int{Value: 1}, &Int{Value: 2}}}
	b := &Seq{Elements: []Object{&Int{Value: 1}, &Int{Value: 2}}}
	if !valuesEqual(a, b) {
		t.Errorf("expected structurally equal seqs to compare equal")
	}
	// Numeric coercion does not apply under structural equality.
	if valuesEqual(&Int{Value: 1}, &Float{Value: 1.0}) {
		t.Errorf("Int 1 and Float 1.0 must not compare equal structurally")
	}
	setA := newSet([]Object{&Int{Value: 1}, &Int{Value: 2}})
	setB := newSet([]Object{&Int{Value: 2}, &Int{Value: 1}})
	if !valuesEqual(setA, setB) {
		t.Errorf("expected order-insensitive set equality")
	}
}
