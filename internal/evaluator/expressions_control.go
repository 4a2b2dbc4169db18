package evaluator

import (
	"strings"

	"github.com/lucidlang/lucid/internal/ast"
	"github.com/lucidlang/lucid/internal/utils"
)

func (i *Interpreter) evalIdentifier(n *ast.Identifier, env *Environment) Object {
	if n.Qualifier != "" {
		modVal, ok := env.Get(n.Qualifier)
		if !ok {
			return newException(KindUnbound, "unbound module alias "+n.Qualifier)
		}
		mod, ok := modVal.(*Module)
		if !ok {
			return newException(KindType, n.Qualifier+" is not a module")
		}
		fn, ok := mod.getExport(n.Name)
		if ok {
			return fn
		}
		// Fall back to a flattened builtin name (String.toUpper ->
		// stringToUpper) before giving up, for modules that re-export
		// the native registry under a per-type namespace.
		fallbackName := utils.ModuleMemberFallbackName(strings.ToLower(mod.FQN.Last()), n.Name)
		if fallback, ok := i.Global.Get(fallbackName); ok {
			return fallback
		}
		return newException(KindUnbound, "module "+mod.FQN.Inspect()+" has no export "+n.Name)
	}
	v, ok := env.Get(n.Name)
	if !ok {
		return newException(KindUnbound, "unbound identifier "+n.Name)
	}
	return v
}

func (i *Interpreter) evalIfExpr(n *ast.IfExpr, env *Environment) Object {
	cond := i.Eval(n.Cond, env)
	if isException(cond) {
		return cond
	}
	b, ok := cond.(*Bool)
	if !ok {
		return newException(KindType, "if condition must be Bool")
	}
	if b.Value {
		return i.Eval(n.Then, env)
	}
	return i.Eval(n.Else, env)
}

// evalLetExpr processes aliases in order, extending one shared frame
// (§4.1: "one combined frame binding all its clauses sequentially so
// later clauses see earlier bindings") — this directly realizes
// testable property 5: `let a = x, b = y in e` behaves as nested lets.
func (i *Interpreter) evalLetExpr(n *ast.LetExpr, env *Environment) Object {
	frame := NewEnclosedEnvironment(env)
	for _, alias := range n.Aliases {
		if exc := i.bindAlias(alias, frame); exc != nil {
			return exc
		}
	}
	return i.Eval(n.Body, frame)
}

func (i *Interpreter) bindAlias(alias *ast.Alias, frame *Environment) *Exception {
	switch alias.Kind {
	case ast.ValueAlias:
		v := i.Eval(alias.Value, frame)
		if isException(v) {
			return v.(*Exception)
		}
		frame.Set(alias.Name, v)
		return nil

	case ast.FunctionAlias, ast.LambdaAlias:
		fn := i.buildFunction(alias.Name, alias.Clauses, frame)
		frame.Set(alias.Name, fn)
		return nil

	case ast.PatternAlias:
		v := i.Eval(alias.Expr, frame)
		if isException(v) {
			return v.(*Exception)
		}
		res := match(alias.Pattern, v, map[string]Object{})
		if res.Exc != nil {
			return res.Exc
		}
		if !res.Ok {
			return newException(KindNoMatch, "let pattern did not match")
		}
		for name, val := range res.Bindings {
			frame.Set(name, val)
		}
		return nil

	case ast.ModuleAlias:
		mod, exc := i.loadModule(alias.Module)
		if exc != nil {
			return exc
		}
		frame.Set(alias.Name, mod)
		return nil
	}
	return newException(KindType, "unknown alias kind")
}

func (i *Interpreter) evalCaseExpr(n *ast.CaseExpr, env *Environment) Object {
	scrutinee := i.Eval(n.Scrutinee, env)
	if isException(scrutinee) {
		return scrutinee
	}
	for _, clause := range n.Clauses {
		res := match(clause.Pattern, scrutinee, map[string]Object{})
		if res.Exc != nil {
			return res.Exc
		}
		if !res.Ok {
			continue
		}
		frame := NewEnclosedEnvironment(env)
		for name, val := range res.Bindings {
			frame.Set(name, val)
		}
		if clause.Guard != nil {
			g := i.Eval(clause.Guard, frame)
			if isException(g) {
				return g
			}
			gb, ok := g.(*Bool)
			if !ok {
				return newException(KindType, "guard must evaluate to Bool")
			}
			if !gb.Value {
				continue
			}
		}
		return i.Eval(clause.Body, frame)
	}
	return newException(KindNoMatch, "no case clause matched")
}

func (i *Interpreter) evalTryExpr(n *ast.TryExpr, env *Environment) Object {
	result := i.Eval(n.Body, env)
	exc, ok := result.(*Exception)
	if !ok {
		return result
	}
	for _, c := range n.Catches {
		// The catch pattern may see either the payload alone or the
		// (:sym, payload) tuple, depending on the arm's own shape.
		asTuple := &Tuple{Elements: []Object{exc.Kind, exc.Payload}}
		frame := NewEnclosedEnvironment(env)
		if res := match(c.Pattern, asTuple, map[string]Object{}); res.Exc == nil && res.Ok {
			for name, val := range res.Bindings {
				frame.Set(name, val)
			}
			return i.Eval(c.Body, frame)
		} else if res.Exc != nil {
			return res.Exc
		}
		if res := match(c.Pattern, exc.Payload, map[string]Object{}); res.Exc == nil && res.Ok {
			for name, val := range res.Bindings {
				frame.Set(name, val)
			}
			return i.Eval(c.Body, frame)
		} else if res.Exc != nil {
			return res.Exc
		}
	}
	return exc
}

func (i *Interpreter) evalRaiseExpr(n *ast.RaiseExpr, env *Environment) Object {
	symVal := i.Eval(n.Symbol, env)
	if isException(symVal) {
		return symVal
	}
	sym, ok := symVal.(*Symbol)
	if !ok {
		return newException(KindType, "raise requires a Symbol")
	}
	msg := i.Eval(n.Message, env)
	if isException(msg) {
		return msg
	}
	return raiseException(sym, msg)
}

func (i *Interpreter) evalDoExpr(n *ast.DoExpr, env *Environment) Object {
	var result Object = UnitObject
	for _, e := range n.Exprs {
		result = i.Eval(e, env)
		if isException(result) {
			return result
		}
	}
	return result
}

func (i *Interpreter) evalWithExpr(n *ast.WithExpr, env *Environment) Object {
	acquired := i.Eval(n.Acquire, env)
	if isException(acquired) {
		return acquired
	}
	frame := NewEnclosedEnvironment(env)
	frame.Set(n.Name, acquired)
	return i.Eval(n.Body, frame)
}
