package evaluator

import (
	"github.com/lucidlang/lucid/internal/ast"
)

// Eval recursively evaluates node within env, guarding recursion depth
// and cooperative cancellation the same way the teacher's own Eval
// wraps evalCore, then delegates to the per-node-kind dispatch in
// evalCore.
func (i *Interpreter) Eval(node ast.Node, env *Environment) Object {
	i.depth++
	defer func() { i.depth-- }()
	if i.depth > i.opts.MaxEvalDepth {
		return newException(KindType, "evaluation depth exceeded")
	}
	select {
	case <-i.ctx.Done():
		return newException(KindType, "evaluation cancelled")
	default:
	}
	return i.evalCore(node, env)
}

// evalCore is the direct sum-typed recursion over AST variants the
// design notes call for in place of the original source's
// virtual-dispatch visitor hierarchy.
func (i *Interpreter) evalCore(node ast.Node, env *Environment) Object {
	switch n := node.(type) {

	// --- literals ---
	case *ast.IntLiteral:
		return &Int{Value: n.Value}
	case *ast.FloatLiteral:
		return &Float{Value: n.Value}
	case *ast.ByteLiteral:
		return &Byte{Value: n.Value}
	case *ast.CharLiteral:
		return &Char{Value: n.Value}
	case *ast.StringLiteral:
		return &String{Value: n.Value}
	case *ast.BoolLiteral:
		return nativeBoolToObject(n.Value)
	case *ast.UnitLiteral:
		return UnitObject
	case *ast.SymbolLiteral:
		return &Symbol{Name: n.Name}

	// --- identifiers ---
	case *ast.Identifier:
		return i.evalIdentifier(n, env)

	// --- operators ---
	case *ast.UnaryExpr:
		return i.evalUnaryExpr(n, env)
	case *ast.BinaryExpr:
		return i.evalBinaryExpr(n, env)

	// --- control flow ---
	case *ast.IfExpr:
		return i.evalIfExpr(n, env)
	case *ast.LetExpr:
		return i.evalLetExpr(n, env)
	case *ast.CaseExpr:
		return i.evalCaseExpr(n, env)
	case *ast.TryExpr:
		return i.evalTryExpr(n, env)
	case *ast.RaiseExpr:
		return i.evalRaiseExpr(n, env)
	case *ast.DoExpr:
		return i.evalDoExpr(n, env)
	case *ast.WithExpr:
		return i.evalWithExpr(n, env)

	// --- functions ---
	case *ast.FunctionLiteral:
		return i.evalFunctionLiteral(n, env)
	case *ast.CallExpr:
		return i.evalCallExpr(n, env)

	// --- records ---
	case *ast.RecordConstructExpr:
		return i.evalRecordConstruct(n, env)
	case *ast.RecordUpdateExpr:
		return i.evalRecordUpdate(n, env)
	case *ast.FieldAccessExpr:
		return i.evalFieldAccess(n, env)

	// --- collections ---
	case *ast.TupleExpr:
		return i.evalExprList(n.Elements, env, func(vs []Object) Object { return &Tuple{Elements: vs} })
	case *ast.SeqExpr:
		return i.evalExprList(n.Elements, env, func(vs []Object) Object { return &Seq{Elements: vs} })
	case *ast.SetExpr:
		return i.evalExprList(n.Elements, env, func(vs []Object) Object { return newSet(vs) })
	case *ast.DictExpr:
		return i.evalDictExpr(n, env)
	case *ast.RangeExpr:
		return i.evalRangeExpr(n, env)
	case *ast.GeneratorExpr:
		return i.evalGeneratorExpr(n, env)
	case *ast.ImportExpr:
		return i.evalImportExpr(n, env)

	case *ast.Program:
		return i.Eval(n.Body, env)

	default:
		return newException(KindType, "unsupported AST node")
	}
}

// evalExprList evaluates a left-to-right expression list (tuple/seq/
// set literals all share this evaluation order, §5) and builds the
// result via build, short-circuiting on the first exception.
func (i *Interpreter) evalExprList(exprs []ast.Expression, env *Environment, build func([]Object) Object) Object {
	vals := make([]Object, 0, len(exprs))
	for _, e := range exprs {
		v := i.Eval(e, env)
		if isException(v) {
			return v
		}
		vals = append(vals, v)
	}
	return build(vals)
}
