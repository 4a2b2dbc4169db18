package evaluator

import (
	"sort"

	"github.com/lucidlang/lucid/internal/ast"
)

// matchResult is the pattern matcher's outcome. A non-match is silent
// (Ok=false, Exc=nil) and never an exception; Exc is populated only for
// genuine structural pattern errors (§7 :pattern) discovered while
// attempting the match, such as an or-pattern whose alternatives bind
// different name sets.
type matchResult struct {
	Ok       bool
	Bindings map[string]Object
	Exc      *Exception
}

func noMatch() matchResult { return matchResult{Ok: false} }

func matchOk(b map[string]Object) matchResult { return matchResult{Ok: true, Bindings: b} }

func matchErr(exc *Exception) matchResult { return matchResult{Exc: exc} }

// match attempts to match pat against v, threading bindings collected
// so far (for non-linear identifier patterns within one tuple/seq/
// record pattern, the same name may appear twice and both occurrences
// must bind structurally equal values).
func match(pat ast.Pattern, v Object, bindings map[string]Object) matchResult {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return matchOk(bindings)

	case *ast.IdentifierPattern:
		if existing, ok := bindings[p.Name]; ok {
			if !valuesEqual(existing, v) {
				return noMatch()
			}
			return matchOk(bindings)
		}
		next := cloneBindings(bindings)
		next[p.Name] = v
		return matchOk(next)

	case *ast.LiteralPattern:
		lit := literalValue(p.Value)
		if lit == nil || !valuesEqual(lit, v) {
			return noMatch()
		}
		return matchOk(bindings)

	case *ast.OrPattern:
		expected := patternNameUnion(p.Alternatives)
		for _, alt := range p.Alternatives {
			if !sameNameSet(patternNames(alt), expected) {
				return matchErr(newException(KindPattern, "or-pattern alternatives bind different names"))
			}
		}
		for _, alt := range p.Alternatives {
			res := match(alt, v, cloneBindings(bindings))
			if res.Exc != nil {
				return res
			}
			if res.Ok {
				merged := cloneBindings(bindings)
				for k, val := range res.Bindings {
					merged[k] = val
				}
				return matchOk(merged)
			}
		}
		return noMatch()

	case *ast.TuplePattern:
		tup, ok := v.(*Tuple)
		if !ok || len(tup.Elements) != len(p.Elements) {
			return noMatch()
		}
		cur := bindings
		for i, sub := range p.Elements {
			res := match(sub, tup.Elements[i], cur)
			if res.Exc != nil {
				return res
			}
			if !res.Ok {
				return noMatch()
			}
			cur = res.Bindings
		}
		return matchOk(cur)

	case *ast.SeqPattern:
		seq, ok := v.(*Seq)
		if !ok || len(seq.Elements) != len(p.Elements) {
			return noMatch()
		}
		cur := bindings
		for i, sub := range p.Elements {
			res := match(sub, seq.Elements[i], cur)
			if res.Exc != nil {
				return res
			}
			if !res.Ok {
				return noMatch()
			}
			cur = res.Bindings
		}
		return matchOk(cur)

	case *ast.HeadTailPattern:
		seq, ok := v.(*Seq)
		if !ok || len(seq.Elements) == 0 {
			return noMatch()
		}
		res := match(p.Head, seq.Elements[0], bindings)
		if res.Exc != nil || !res.Ok {
			return res
		}
		return match(p.Tail, &Seq{Elements: seq.Elements[1:]}, res.Bindings)

	case *ast.TailsHeadPattern:
		seq, ok := v.(*Seq)
		if !ok || len(seq.Elements) == 0 {
			return noMatch()
		}
		last := seq.Elements[len(seq.Elements)-1]
		init := seq.Elements[:len(seq.Elements)-1]
		res := match(p.Init, &Seq{Elements: init}, bindings)
		if res.Exc != nil || !res.Ok {
			return res
		}
		return match(p.Last, last, res.Bindings)

	case *ast.HeadTailsHeadPattern:
		seq, ok := v.(*Seq)
		if !ok || len(seq.Elements) < 2 {
			return noMatch()
		}
		first := seq.Elements[0]
		last := seq.Elements[len(seq.Elements)-1]
		middle := seq.Elements[1 : len(seq.Elements)-1]
		res := match(p.First, first, bindings)
		if res.Exc != nil || !res.Ok {
			return res
		}
		res = match(p.Middle, &Seq{Elements: middle}, res.Bindings)
		if res.Exc != nil || !res.Ok {
			return res
		}
		return match(p.Last, last, res.Bindings)

	case *ast.DictPattern:
		dict, ok := v.(*Dict)
		if !ok {
			return noMatch()
		}
		cur := bindings
		for _, entry := range p.Entries {
			keyVal := literalValue(entry.Key)
			if keyVal == nil {
				return matchErr(newException(KindPattern, "dict pattern key must be a literal"))
			}
			val, present := dict.get(keyVal)
			if !present {
				return noMatch()
			}
			res := match(entry.Value, val, cur)
			if res.Exc != nil {
				return res
			}
			if !res.Ok {
				return noMatch()
			}
			cur = res.Bindings
		}
		return matchOk(cur)

	case *ast.RecordPattern:
		rec, ok := v.(*Record)
		if !ok || rec.TypeName != p.TypeName {
			return noMatch()
		}
		cur := bindings
		for _, f := range p.Fields {
			val, present := rec.getField(f.Name)
			if !present {
				return noMatch()
			}
			res := match(f.Value, val, cur)
			if res.Exc != nil {
				return res
			}
			if !res.Ok {
				return noMatch()
			}
			cur = res.Bindings
		}
		return matchOk(cur)

	case *ast.AsPattern:
		res := match(p.Pattern, v, bindings)
		if res.Exc != nil || !res.Ok {
			return res
		}
		next := cloneBindings(res.Bindings)
		if existing, ok := next[p.Name]; ok && !valuesEqual(existing, v) {
			return noMatch()
		}
		next[p.Name] = v
		return matchOk(next)

	default:
		return matchErr(newException(KindPattern, "unsupported pattern form"))
	}
}

// matchParams matches a function clause's parameter patterns against
// an already-fully-applied argument vector, in order, threading
// bindings across parameters the same way a TuplePattern does.
func matchParams(params []ast.Pattern, args []Object) matchResult {
	if len(params) != len(args) {
		return noMatch()
	}
	cur := map[string]Object{}
	for i, p := range params {
		res := match(p, args[i], cur)
		if res.Exc != nil {
			return res
		}
		if !res.Ok {
			return noMatch()
		}
		cur = res.Bindings
	}
	return matchOk(cur)
}

func cloneBindings(b map[string]Object) map[string]Object {
	next := make(map[string]Object, len(b)+1)
	for k, v := range b {
		next[k] = v
	}
	return next
}

// patternNames collects every identifier/as-pattern name a pattern
// would bind, used to validate or-pattern alternatives bind the same
// set.
func patternNames(pat ast.Pattern) []string {
	var names []string
	var walk func(p ast.Pattern)
	walk = func(p ast.Pattern) {
		switch v := p.(type) {
		case *ast.IdentifierPattern:
			names = append(names, v.Name)
		case *ast.AsPattern:
			names = append(names, v.Name)
			walk(v.Pattern)
		case *ast.OrPattern:
			if len(v.Alternatives) > 0 {
				walk(v.Alternatives[0])
			}
		case *ast.TuplePattern:
			for _, e := range v.Elements {
				walk(e)
			}
		case *ast.SeqPattern:
			for _, e := range v.Elements {
				walk(e)
			}
		case *ast.HeadTailPattern:
			walk(v.Head)
			walk(v.Tail)
		case *ast.TailsHeadPattern:
			walk(v.Init)
			walk(v.Last)
		case *ast.HeadTailsHeadPattern:
			walk(v.First)
			walk(v.Middle)
			walk(v.Last)
		case *ast.DictPattern:
			for _, e := range v.Entries {
				walk(e.Value)
			}
		case *ast.RecordPattern:
			for _, f := range v.Fields {
				walk(f.Value)
			}
		}
	}
	walk(pat)
	sort.Strings(names)
	return names
}

func patternNameUnion(alts []ast.Pattern) []string {
	if len(alts) == 0 {
		return nil
	}
	return patternNames(alts[0])
}

func sameNameSet(a, b []string) bool {
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

// literalValue converts a literal AST expression into its runtime
// value, for use by LiteralPattern and DictPattern keys. Returns nil
// if expr is not a literal form.
func literalValue(expr ast.Expression) Object {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return &Int{Value: e.Value}
	case *ast.FloatLiteral:
		return &Float{Value: e.Value}
	case *ast.ByteLiteral:
		return &Byte{Value: e.Value}
	case *ast.CharLiteral:
		return &Char{Value: e.Value}
	case *ast.StringLiteral:
		return &String{Value: e.Value}
	case *ast.BoolLiteral:
		return nativeBoolToObject(e.Value)
	case *ast.UnitLiteral:
		return UnitObject
	case *ast.SymbolLiteral:
		return &Symbol{Name: e.Name}
	default:
		return nil
	}
}
