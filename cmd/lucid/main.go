// Command lucid is a thin smoke-test harness over the evaluation core.
// It builds a handful of programs directly as AST values (there is no
// lexer or parser in this module — source-text parsing is an external
// collaborator per the evaluator's scope) and prints what each one
// evaluates to: arithmetic, ranges, shifts, currying, case matching and
// try/raise/catch. No demo imports a module or calls a builtin.
package main

import (
	"fmt"

	"github.com/lucidlang/lucid/internal/ast"
	"github.com/lucidlang/lucid/internal/evaluator"
)

func main() {
	interp := evaluator.New(evaluator.NewLoader(noopLoader{}), evaluator.DefaultOptions())

	for _, demo := range demos() {
		v := interp.Eval(demo.program, interp.Global)
		fmt.Printf("%-28s => %s\n", demo.name, v.Inspect())
	}
}

type namedProgram struct {
	name    string
	program ast.Node
}

// noopLoader satisfies evaluator.ModuleLoader for demos that never
// import anything.
type noopLoader struct{}

func (noopLoader) Load(fqn string) (*evaluator.ModuleSource, error) {
	return nil, fmt.Errorf("no module %q available in this harness", fqn)
}

func demos() []namedProgram {
	return []namedProgram{
		{"2 + 3 * 4 - 1", arithmeticDemo()},
		{"[10..1..-2]", rangeDemo()},
		{"-16 >>> 2", shiftDemo()},
		{"curried add", curryDemo()},
		{"case pattern match", caseDemo()},
		{"try/raise/catch", tryDemo()},
	}
}

// arithmeticDemo builds 2 + 3 * 4 - 1, exercising operator precedence
// expressed directly as nested BinaryExpr nodes (there is no parser to
// derive this nesting from source text).
func arithmeticDemo() ast.Node {
	two := &ast.IntLiteral{Value: 2}
	three := &ast.IntLiteral{Value: 3}
	four := &ast.IntLiteral{Value: 4}
	one := &ast.IntLiteral{Value: 1}
	mul := &ast.BinaryExpr{Op: "*", Left: three, Right: four}
	add := &ast.BinaryExpr{Op: "+", Left: two, Right: mul}
	return &ast.BinaryExpr{Op: "-", Left: add, Right: one}
}

func rangeDemo() ast.Node {
	return &ast.RangeExpr{
		Start: &ast.IntLiteral{Value: 10},
		End:   &ast.IntLiteral{Value: 1},
		Step:  &ast.IntLiteral{Value: -2},
	}
}

func shiftDemo() ast.Node {
	return &ast.BinaryExpr{
		Op:    ">>>",
		Left:  &ast.UnaryExpr{Op: "-", Operand: &ast.IntLiteral{Value: 16}},
		Right: &ast.IntLiteral{Value: 2},
	}
}

// curryDemo builds `let add = fn(x, y) -> x + y in add(1)(2)`, exercising
// partial application followed by a second call that completes it.
func curryDemo() ast.Node {
	addClause := &ast.FunctionClause{
		Params: []ast.Pattern{&ast.IdentifierPattern{Name: "x"}, &ast.IdentifierPattern{Name: "y"}},
		Body: &ast.BinaryExpr{
			Op:    "+",
			Left:  &ast.Identifier{Name: "x"},
			Right: &ast.Identifier{Name: "y"},
		},
	}
	call1 := &ast.CallExpr{Callee: &ast.Identifier{Name: "add"}, Args: []ast.Expression{&ast.IntLiteral{Value: 1}}}
	call2 := &ast.CallExpr{Callee: call1, Args: []ast.Expression{&ast.IntLiteral{Value: 2}}}
	return &ast.LetExpr{
		Aliases: []*ast.Alias{{Kind: ast.FunctionAlias, Name: "add", Clauses: []*ast.FunctionClause{addClause}}},
		Body:    call2,
	}
}

// caseDemo builds `case (1, 2) of (0, y) -> y | (x, y) -> x + y`.
func caseDemo() ast.Node {
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
	return &ast.CaseExpr{Scrutinee: scrutinee, Clauses: clauses}
}

// tryDemo builds `try raise :boom("oops") catch (:boom, msg) -> msg`.
func tryDemo() ast.Node {
	raise := &ast.RaiseExpr{Symbol: &ast.SymbolLiteral{Name: "boom"}, Message: &ast.StringLiteral{Value: "oops"}}
	catch := &ast.CatchClause{
		Pattern: &ast.TuplePattern{Elements: []ast.Pattern{
			&ast.LiteralPattern{Value: &ast.SymbolLiteral{Name: "boom"}},
			&ast.IdentifierPattern{Name: "msg"},
		}},
		Body: &ast.Identifier{Name: "msg"},
	}
	return &ast.TryExpr{Body: raise, Catches: []*ast.CatchClause{catch}}
}
