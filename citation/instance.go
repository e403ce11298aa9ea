package citation

import "fmt"

// Instance is one in-progress citation: a type, one value per schema field
// and the language used for the date phrase.
type Instance struct {
	schema Schema
	values []string
	lang   Lang
}

// New returns an instance of t with every field empty.
func New(t Type, lang Lang) *Instance {
	s := SchemaFor(t)
	return &Instance{
		schema: s,
		values: make([]string, len(s.Fields)),
		lang:   lang,
	}
}

func (in *Instance) Type() Type { return in.schema.Type }

// Schema returns the schema of the instance. Callers must not modify Fields.
func (in *Instance) Schema() Schema { return in.schema }

func (in *Instance) Lang() Lang { return in.lang }

func (in *Instance) SetLang(l Lang) { in.lang = l }

// Len returns the number of fields.
func (in *Instance) Len() int { return len(in.values) }

// Field returns the schema entry at i.
func (in *Instance) Field(i int) Field {
	in.mustIndex(i)
	return in.schema.Fields[i]
}

// Key returns the template key of field i.
func (in *Instance) Key(i int) string { return in.Field(i).Key }

// Value returns the current text of field i.
func (in *Instance) Value(i int) string {
	in.mustIndex(i)
	return in.values[i]
}

// SetValue replaces the text of field i.
func (in *Instance) SetValue(i int, v string) {
	in.mustIndex(i)
	in.values[i] = v
}

// Clear empties field i and reports whether it held any text.
func (in *Instance) Clear(i int) bool {
	in.mustIndex(i)
	if in.values[i] == "" {
		return false
	}
	in.values[i] = ""
	return true
}

// Values returns a copy of the field values in schema order.
func (in *Instance) Values() []string {
	return append([]string(nil), in.values...)
}

// Values and schema fields are created together and never resized, so an
// index outside them is a programming error.
func (in *Instance) mustIndex(i int) {
	if i < 0 || i >= len(in.values) {
		panic(fmt.Sprintf("citation: field index %d out of range [0,%d) for %s", i, len(in.values), in.schema.Type))
	}
}
