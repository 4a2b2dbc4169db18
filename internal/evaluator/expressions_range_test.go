package evaluator

import (
	"testing"

	"github.com/lucidlang/lucid/internal/ast"
)

func TestRanges(t *testing.T) {
	cases := []struct {
		name       string
		start, end int64
		step       *int64
		want       []int64
	}{
		{"ascending default step", 1, 5, nil, []int64{1, 2, 3, 4, 5}},
		{"descending with negative step", 10, 1, intPtr(-2), []int64{10, 8, 6, 4, 2}},
		{"single element when start == end", 5, 5, nil, []int64{5}},
		{"empty when direction disagrees with step", 1, 5, intPtr(-1), nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rng := &ast.RangeExpr{Start: &ast.IntLiteral{Value: c.start}, End: &ast.IntLiteral{Value: c.end}}
			if c.step != nil {
				rng.Step = &ast.IntLiteral{Value: *c.step}
			}
			interp := newTestInterpreter()
			result := interp.Eval(rng, interp.Global)
			seq, ok := result.(*Seq)
			if !ok {
				t.Fatalf("expected *Seq, got %T (%s)", result, result.Inspect())
			}
			got := make([]int64, len(seq.Elements))
			for i, e := range seq.Elements {
				got[i] = e.(*Int).Value
			}
			if !int64SliceEqual(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestGeneratorExpr(t *testing.T) {
	// [x * 2 | x <- [1, 2, 3]]
	source := &ast.SeqExpr{Elements: []ast.Expression{
		&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2}, &ast.IntLiteral{Value: 3},
	}}
	gen := &ast.GeneratorExpr{
		Kind:      ast.GenSeq,
		ValueExpr: &ast.BinaryExpr{Op: "*", Left: &ast.Identifier{Name: "x"}, Right: &ast.IntLiteral{Value: 2}},
		Extractor: &ast.IdentifierPattern{Name: "x"},
		Source:    source,
	}
	interp := newTestInterpreter()
	result := interp.Eval(gen, interp.Global)
	seq, ok := result.(*Seq)
	if !ok {
		t.Fatalf("expected *Seq, got %T (%s)", result, result.Inspect())
	}
	want := []int64{2, 4, 6}
	got := make([]int64, len(seq.Elements))
	for i, e := range seq.Elements {
		got[i] = e.(*Int).Value
	}
	if !int64SliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func intPtr(v int64) *int64 { return &v }

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
