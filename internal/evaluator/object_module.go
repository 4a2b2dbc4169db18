package evaluator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucidlang/lucid/internal/ast"
)

// Module is an FQN, its exports (name -> Function, every export fully
// qualified per the data-model invariant), its record-type table, and a
// keepalive reference to the AST it owns — Functions built from that
// AST borrow bodies from it rather than owning a copy.
type Module struct {
	FQN         *FQN
	Exports     map[string]*Function
	RecordTypes map[string]*RecordType
	ast         *ast.ModuleDecl // keepalive; never mutated after Evaluate
}

func (m *Module) Type() ObjectType { return ModuleObj }

func (m *Module) Inspect() string {
	names := make([]string, 0, len(m.Exports))
	for n := range m.Exports {
		names = append(names, n)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s(exports=%s)", m.FQN.Inspect(), strings.Join(names, ","))
}

func (m *Module) Hash() uint32 { return hashString(m.FQN.Inspect()) }

func (m *Module) getExport(name string) (*Function, bool) {
	f, ok := m.Exports[name]
	return f, ok
}

func (m *Module) getRecordType(name string) (*RecordType, bool) {
	rt, ok := m.RecordTypes[name]
	return rt, ok
}

// ExportNames lists a module's export names, for a second-tier cache
// (internal/modules.DiskCache) that persists a module's shape without
// serializing live Function/Environment values.
func (m *Module) ExportNames() []string {
	names := make([]string, 0, len(m.Exports))
	for n := range m.Exports {
		names = append(names, n)
	}
	return names
}

// NewCachedModuleShell reconstructs a Module from a disk-cache entry:
// its record-type table is fully live, but its exports are placeholder
// native Functions that re-raise :unbound (the cache only ever
// backstops the in-memory loader cache across process restarts; a
// genuinely live module is always re-evaluated from source when the
// in-memory cache and this shell both miss a callable body).
func NewCachedModuleShell(fqn string, exportNames []string, recordTypes map[string]*RecordType) *Module {
	exports := make(map[string]*Function, len(exportNames))
	for _, name := range exportNames {
		n := name
		exports[n] = nativeFn(n, 0, func(_ *Interpreter, _ []Object) Object {
			return newException(KindUnbound, "cached export "+n+" requires re-evaluating its owning module from source")
		})
	}
	return &Module{
		FQN:         fqnFromDotted(fqn),
		Exports:     exports,
		RecordTypes: recordTypes,
	}
}
