package evaluator

import "github.com/lucidlang/lucid/internal/ast"

// buildFunction turns a syntactic clause list into a Function value
// whose lexical environment is the creation-time frame chain (§4.5).
func (i *Interpreter) buildFunction(name string, clauses []*ast.FunctionClause, env *Environment) *Function {
	arity := 0
	if len(clauses) > 0 {
		arity = len(clauses[0].Params)
	}
	fnClauses := make([]*Clause, len(clauses))
	for idx, c := range clauses {
		fnClauses[idx] = &Clause{Params: c.Params, Guard: c.Guard, Body: c.Body}
	}
	var fqn *FQN
	if name != "" {
		fqn = &FQN{Parts: []string{name}}
	}
	return &Function{FQN: fqn, Arity: arity, Clauses: fnClauses, Env: env}
}

func (i *Interpreter) evalFunctionLiteral(n *ast.FunctionLiteral, env *Environment) Object {
	return i.buildFunction(n.Name, n.Clauses, env)
}

// evalCallExpr evaluates the callee then every argument left to right
// (§5), then delegates to ApplyFunction (§4.4 currying rules).
func (i *Interpreter) evalCallExpr(n *ast.CallExpr, env *Environment) Object {
	callee := i.Eval(n.Callee, env)
	if isException(callee) {
		return callee
	}
	args := make([]Object, 0, len(n.Args))
	for _, a := range n.Args {
		v := i.Eval(a, env)
		if isException(v) {
			return v
		}
		args = append(args, v)
	}
	return i.ApplyFunction(callee, args)
}

// --- records ---

func (i *Interpreter) evalRecordConstruct(n *ast.RecordConstructExpr, env *Environment) Object {
	rt, exc := i.lookupRecordType(n.TypeName, env)
	if exc != nil {
		return exc
	}
	values := make([]Object, len(rt.Fields))
	supplied := map[string]bool{}
	for _, f := range n.Fields {
		idx := fieldIndex(rt.Fields, f.Name)
		if idx < 0 {
			return newException(KindField, "record type "+n.TypeName+" has no field "+f.Name)
		}
		v := i.Eval(f.Value, env)
		if isException(v) {
			return v
		}
		values[idx] = v
		supplied[f.Name] = true
	}
	for _, name := range rt.Fields {
		if !supplied[name] {
			return newException(KindField, "missing field "+name+" constructing "+n.TypeName)
		}
	}
	return &Record{TypeName: n.TypeName, FieldNames: append([]string(nil), rt.Fields...), FieldValues: values}
}

func (i *Interpreter) evalRecordUpdate(n *ast.RecordUpdateExpr, env *Environment) Object {
	base := i.Eval(n.Record, env)
	if isException(base) {
		return base
	}
	rec, ok := base.(*Record)
	if !ok {
		return newException(KindType, "record update requires a Record value")
	}
	names := make([]string, 0, len(n.Fields))
	values := make([]Object, 0, len(n.Fields))
	for _, f := range n.Fields {
		if _, present := rec.getField(f.Name); !present {
			return newException(KindField, "record has no field "+f.Name)
		}
		v := i.Eval(f.Value, env)
		if isException(v) {
			return v
		}
		names = append(names, f.Name)
		values = append(values, v)
	}
	return rec.withFields(names, values)
}

func (i *Interpreter) evalFieldAccess(n *ast.FieldAccessExpr, env *Environment) Object {
	base := i.Eval(n.Record, env)
	if isException(base) {
		return base
	}
	rec, ok := base.(*Record)
	if !ok {
		return newException(KindType, "field access requires a Record value")
	}
	v, present := rec.getField(n.Field)
	if !present {
		return newException(KindField, "record has no field "+n.Field)
	}
	return v
}

func fieldIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// lookupRecordType finds a record type declaration. The evaluator
// itself does not own a global record-type namespace; record types
// live on the ambient Module (§4.3's "ambient module's record table").
// A standalone (non-module) program's record types are registered on
// the Interpreter's StandaloneRecordTypes map, set up by the caller
// before evaluation (e.g. by a REPL) — an evaluation-core convenience,
// not part of the module system interface itself.
func (i *Interpreter) lookupRecordType(name string, env *Environment) (*RecordType, *Exception) {
	if modVal, ok := env.Get(moduleKey); ok {
		if mod, ok := modVal.(*Module); ok {
			if rt, ok := mod.getRecordType(name); ok {
				return rt, nil
			}
		}
	}
	if rt, ok := i.standaloneRecordTypes[name]; ok {
		return rt, nil
	}
	return nil, newException(KindType, "unknown record type "+name)
}
