package evaluator

import "context"

// ModuleLoader is the caller-supplied abstraction spec §4.7 requires:
// given a dotted module name it returns a parsed AST plus the source
// path. Concrete file/search-path resolution is an external
// collaborator; the evaluator only consumes this interface.
type ModuleLoader interface {
	Load(fqn string) (*ModuleSource, error)
}

// ModuleSource is what a loader hands back: enough to evaluate a
// module (its declaration AST) plus the path it came from, carried for
// diagnostics.
type ModuleSource struct {
	Decl       interface{} // must hold an *ast.ModuleDecl; loadModule raises :type for anything else
	SourcePath string
}

// Options configures an Interpreter. maxEvalDepth and EntryFunction
// mirror the teacher's own plain-constant configuration style
// (evaluator.go's maxEvalDepth = 10000) rather than reaching for a
// config-file/env-var library the teacher itself never uses for this
// package.
type Options struct {
	MaxEvalDepth  int
	EntryFunction string // entry export name for module-hosted programs; default "run". Stored only: the evaluator never invokes it.
}

func DefaultOptions() Options {
	return Options{MaxEvalDepth: 10000, EntryFunction: "run"}
}

// Interpreter is the evaluation core's entry point: the global
// (prelude) environment, the module loader/cache, and the builtin
// registry.
type Interpreter struct {
	opts    Options
	Global  *Environment
	Loader  *Loader
	depth   int
	ctx     context.Context

	// standaloneRecordTypes holds record-type declarations visible
	// outside of any Module (e.g. a script with no module wrapper). A
	// Module's own RecordTypes table takes precedence when evaluating
	// module-resident code; see lookupRecordType.
	standaloneRecordTypes map[string]*RecordType
}

// RegisterRecordType makes a record type available to Record
// construction/update/access for code evaluated outside of a module.
func (i *Interpreter) RegisterRecordType(rt *RecordType) {
	i.standaloneRecordTypes[rt.Name] = rt
}

func New(loader *Loader, opts Options) *Interpreter {
	if opts.MaxEvalDepth == 0 {
		opts.MaxEvalDepth = DefaultOptions().MaxEvalDepth
	}
	if opts.EntryFunction == "" {
		opts.EntryFunction = DefaultOptions().EntryFunction
	}
	i := &Interpreter{
		opts:                  opts,
		Global:                NewEnvironment(),
		Loader:                loader,
		ctx:                   context.Background(),
		standaloneRecordTypes: make(map[string]*RecordType),
	}
	RegisterBuiltins(i.Global)
	for _, rt := range optionRecordTypes() {
		i.RegisterRecordType(rt)
	}
	for _, rt := range resultRecordTypes() {
		i.RegisterRecordType(rt)
	}
	return i
}

// WithContext returns a shallow copy of the interpreter bound to ctx,
// for cooperative cancellation checks in Eval.
func (i *Interpreter) WithContext(ctx context.Context) *Interpreter {
	clone := *i
	clone.ctx = ctx
	clone.depth = 0
	return &clone
}
