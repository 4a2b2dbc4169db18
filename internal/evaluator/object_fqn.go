package evaluator

import "strings"

// FQN is a fully-qualified name: an ordered list of identifier parts,
// printed joined by "::" (A::B::C).
type FQN struct{ Parts []string }

func (f *FQN) Type() ObjectType { return FQNObj }
func (f *FQN) Inspect() string  { return strings.Join(f.Parts, "::") }
func (f *FQN) Hash() uint32     { return hashString(f.Inspect()) }

func (f *FQN) String() string { return strings.Join(f.Parts, ".") }

// Last returns the final part, the name a module export is keyed by.
func (f *FQN) Last() string {
	if len(f.Parts) == 0 {
		return ""
	}
	return f.Parts[len(f.Parts)-1]
}

func fqnFromDotted(dotted string) *FQN {
	return &FQN{Parts: strings.Split(dotted, ".")}
}
