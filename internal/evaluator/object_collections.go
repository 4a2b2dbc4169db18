package evaluator

import "strings"

// Tuple is a fixed-arity ordered sequence of values.
type Tuple struct{ Elements []Object }

func (t *Tuple) Type() ObjectType { return TupleObj }
func (t *Tuple) Inspect() string  { return "(" + joinInspect(t.Elements, ", ") + ")" }
func (t *Tuple) Hash() uint32 {
	h := uint32(2166136261)
	for _, e := range t.Elements {
		h = hashCombine(h, e)
	}
	return h
}

// Seq is an immutable, variable-length ordered sequence. Every mutating
// operation (cons, append, concat) allocates a fresh backing slice;
// nothing in this package ever writes into an existing Seq's slice.
type Seq struct{ Elements []Object }

func (s *Seq) Type() ObjectType { return SeqObj }
func (s *Seq) Inspect() string  { return "[" + joinInspect(s.Elements, ", ") + "]" }
func (s *Seq) Hash() uint32 {
	h := uint32(2166136319)
	for _, e := range s.Elements {
		h = hashCombine(h, e)
	}
	return h
}

func emptySeq() *Seq { return &Seq{Elements: nil} }

// prepend returns a new Seq with x as its first element.
func (s *Seq) prepend(x Object) *Seq {
	next := make([]Object, len(s.Elements)+1)
	next[0] = x
	copy(next[1:], s.Elements)
	return &Seq{Elements: next}
}

// appendOne returns a new Seq with x as its last element.
func (s *Seq) appendOne(x Object) *Seq {
	next := make([]Object, len(s.Elements)+1)
	copy(next, s.Elements)
	next[len(s.Elements)] = x
	return &Seq{Elements: next}
}

func (s *Seq) concat(other *Seq) *Seq {
	next := make([]Object, 0, len(s.Elements)+len(other.Elements))
	next = append(next, s.Elements...)
	next = append(next, other.Elements...)
	return &Seq{Elements: next}
}

// Set is an unordered-semantically but insertion-ordered (for
// deterministic printing) collection of structurally-distinct elements.
type Set struct{ Elements []Object }

func (s *Set) Type() ObjectType { return SetObj }
func (s *Set) Inspect() string  { return "{" + joinInspect(s.Elements, ", ") + "}" }
func (s *Set) Hash() uint32 {
	// Order-insensitive: XOR every element's hash together.
	var h uint32
	for _, e := range s.Elements {
		h ^= e.Hash()
	}
	return h
}

func newSet(elems []Object) *Set {
	out := &Set{}
	for _, e := range elems {
		out = out.add(e)
	}
	return out
}

func (s *Set) contains(x Object) bool {
	for _, e := range s.Elements {
		if valuesEqual(e, x) {
			return true
		}
	}
	return false
}

func (s *Set) add(x Object) *Set {
	if s.contains(x) {
		return s
	}
	next := make([]Object, len(s.Elements)+1)
	copy(next, s.Elements)
	next[len(s.Elements)] = x
	return &Set{Elements: next}
}

func (s *Set) union(other *Set) *Set {
	result := s
	for _, e := range other.Elements {
		result = result.add(e)
	}
	return result
}

// DictPair is one (key, value) entry of a Dict.
type DictPair struct{ Key, Value Object }

// Dict is an ordered sequence of (key, value) pairs, per the data
// model's literal wording — not a hash table. Lookup is a linear scan
// by structural equality.
type Dict struct{ Pairs []DictPair }

func (d *Dict) Type() ObjectType { return DictObj }
func (d *Dict) Inspect() string {
	parts := make([]string, len(d.Pairs))
	for i, p := range d.Pairs {
		parts[i] = p.Key.Inspect() + ": " + p.Value.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (d *Dict) Hash() uint32 {
	var h uint32
	for _, p := range d.Pairs {
		h ^= hashCombine(p.Key.Hash(), p.Value)
	}
	return h
}

func (d *Dict) get(key Object) (Object, bool) {
	for _, p := range d.Pairs {
		if valuesEqual(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

func (d *Dict) put(key, value Object) *Dict {
	next := make([]DictPair, 0, len(d.Pairs)+1)
	replaced := false
	for _, p := range d.Pairs {
		if valuesEqual(p.Key, key) {
			next = append(next, DictPair{key, value})
			replaced = true
			continue
		}
		next = append(next, p)
	}
	if !replaced {
		next = append(next, DictPair{key, value})
	}
	return &Dict{Pairs: next}
}

// merge returns a new Dict combining d and other; other wins on a
// duplicate key (right-biased, per the ++ operator semantics).
func (d *Dict) merge(other *Dict) *Dict {
	result := d
	for _, p := range other.Pairs {
		result = result.put(p.Key, p.Value)
	}
	return result
}

func joinInspect(objs []Object, sep string) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = o.Inspect()
	}
	return strings.Join(parts, sep)
}
