package evaluator

import "strings"

// RecordType is a named declaration of an ordered field-name list,
// owned by the module that declares it.
type RecordType struct {
	Name   string
	Fields []string
}

// Record is a record-type name plus an ordered field-name list and a
// parallel value list. Field names are unique per record (enforced at
// construction time by the evaluator, not here).
type Record struct {
	TypeName    string
	FieldNames  []string
	FieldValues []Object
}

func (r *Record) Type() ObjectType { return RecordObj }

func (r *Record) Inspect() string {
	parts := make([]string, len(r.FieldNames))
	for i, n := range r.FieldNames {
		parts[i] = n + ": " + r.FieldValues[i].Inspect()
	}
	return r.TypeName + "{" + strings.Join(parts, ", ") + "}"
}

func (r *Record) Hash() uint32 {
	h := hashString(r.TypeName)
	for i, n := range r.FieldNames {
		h = hashCombine(h, &String{Value: n})
		h = hashCombine(h, r.FieldValues[i])
	}
	return h
}

// getField returns the value of a field and whether it exists.
func (r *Record) getField(name string) (Object, bool) {
	for i, n := range r.FieldNames {
		if n == name {
			return r.FieldValues[i], true
		}
	}
	return nil, false
}

// withFields returns a new Record with the named fields replaced. The
// caller must have already verified every name exists.
func (r *Record) withFields(names []string, values []Object) *Record {
	newValues := make([]Object, len(r.FieldValues))
	copy(newValues, r.FieldValues)
	for i, n := range names {
		for j, fn := range r.FieldNames {
			if fn == n {
				newValues[j] = values[i]
			}
		}
	}
	return &Record{TypeName: r.TypeName, FieldNames: r.FieldNames, FieldValues: newValues}
}
