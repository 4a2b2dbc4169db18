package evaluator

import (
	"fmt"
	"testing"

	"github.com/lucidlang/lucid/internal/ast"
)

// mapLoader resolves fqn to a pre-built ModuleSource, for tests that
// don't need real file/search-path resolution.
type mapLoader map[string]*ast.ModuleDecl

func (m mapLoader) Load(fqn string) (*ModuleSource, error) {
	decl, ok := m[fqn]
	if !ok {
		return nil, fmt.Errorf("no module %q", fqn)
	}
	return &ModuleSource{Decl: decl, SourcePath: fqn + ".lc"}, nil
}

func doubleClause() *ast.FunctionClause {
	return &ast.FunctionClause{
		Params: []ast.Pattern{&ast.IdentifierPattern{Name: "x"}},
		Body:   &ast.BinaryExpr{Op: "*", Left: &ast.Identifier{Name: "x"}, Right: &ast.IntLiteral{Value: 2}},
	}
}

func TestLoadModuleCachesByFQN(t *testing.T) {
	decl := &ast.ModuleDecl{
		FQN:       []string{"Math"},
		Functions: []*ast.ExportedFunction{{Name: "double", Clauses: []*ast.FunctionClause{doubleClause()}}},
	}
	interp := New(NewLoader(mapLoader{"Math": decl}), DefaultOptions())

	first, exc := interp.loadModule("Math")
	if exc != nil {
		t.Fatalf("unexpected exception: %s", exc.Inspect())
	}
	second, exc := interp.loadModule("Math")
	if exc != nil {
		t.Fatalf("unexpected exception on cached load: %s", exc.Inspect())
	}
	if first != second {
		t.Errorf("expected the second loadModule to return the identical cached *Module")
	}
	if _, ok := first.getExport("double"); !ok {
		t.Errorf("expected Math to export double")
	}
}

func TestImportSelectedBindsNames(t *testing.T) {
	decl := &ast.ModuleDecl{
		FQN:       []string{"Math"},
		Functions: []*ast.ExportedFunction{{Name: "double", Clauses: []*ast.FunctionClause{doubleClause()}}},
	}
	interp := New(NewLoader(mapLoader{"Math": decl}), DefaultOptions())
	env := NewEnclosedEnvironment(interp.Global)

	imp := &ast.ImportExpr{Kind: ast.ImportSelected, Module: "Math", Names: []string{"double"}}
	if exc, ok := interp.Eval(imp, env).(*Exception); ok {
		t.Fatalf("unexpected exception importing: %s", exc.Inspect())
	}
	fn, ok := env.Get("double")
	if !ok {
		t.Fatalf("expected double to be bound after selected import")
	}
	call := &ast.CallExpr{Callee: &ast.Identifier{Name: "double"}, Args: []ast.Expression{&ast.IntLiteral{Value: 21}}}
	env.Set("double", fn)
	result := interp.Eval(call, env)
	i, ok := result.(*Int)
	if !ok || i.Value != 42 {
		t.Fatalf("expected double(21) = 42, got %s", result.Inspect())
	}
}

func TestImportAliasedBindsModuleValue(t *testing.T) {
	decl := &ast.ModuleDecl{
		FQN:       []string{"Math"},
		Functions: []*ast.ExportedFunction{{Name: "double", Clauses: []*ast.FunctionClause{doubleClause()}}},
	}
	interp := New(NewLoader(mapLoader{"Math": decl}), DefaultOptions())
	env := NewEnclosedEnvironment(interp.Global)

	imp := &ast.ImportExpr{Kind: ast.ImportAliased, Module: "Math", Alias: "M"}
	interp.Eval(imp, env)
	v, ok := env.Get("M")
	if !ok {
		t.Fatalf("expected M to be bound after aliased import")
	}
	mod, ok := v.(*Module)
	if !ok {
		t.Fatalf("expected *Module, got %T", v)
	}
	if _, ok := mod.getExport("double"); !ok {
		t.Errorf("expected aliased module to expose double")
	}
}

// TestLoadModuleDetectsInFlightCycle exercises the processing-set guard
// directly: a real A-imports-B-imports-A cycle marks both FQNs
// in-flight for the duration of the outer synchronous loadModule call,
// which is exactly the state this simulates by marking "Self" in
// flight before asking for it again.
func TestLoadModuleDetectsInFlightCycle(t *testing.T) {
	l := NewLoader(mapLoader{})
	interp := New(l, DefaultOptions())

	l.mu.Lock()
	l.processing["Self"] = true
	l.mu.Unlock()

	_, exc := interp.loadModule("Self")
	if exc == nil {
		t.Fatalf("expected a :cycle exception, got no exception")
	}
	if exc.Kind.Name != KindCycle {
		t.Errorf("expected kind %q, got %q", KindCycle, exc.Kind.Name)
	}
}

func TestImportUnboundModuleRaisesUnbound(t *testing.T) {
	interp := New(NewLoader(mapLoader{}), DefaultOptions())
	env := NewEnclosedEnvironment(interp.Global)
	imp := &ast.ImportExpr{Kind: ast.ImportAliased, Module: "Missing", Alias: "M"}
	result := interp.Eval(imp, env)
	exc, ok := result.(*Exception)
	if !ok {
		t.Fatalf("expected *Exception, got %T (%s)", result, result.Inspect())
	}
	if exc.Kind.Name != KindUnbound {
		t.Errorf("expected kind %q, got %q", KindUnbound, exc.Kind.Name)
	}
}
