package reference

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/iw2rmb/apacite/citation"
)

// Record is a serializable snapshot of a finished citation.
type Record struct {
	Type     string        `yaml:"type"`
	Lang     string        `yaml:"lang"`
	Fields   []FieldRecord `yaml:"fields"`
	Citation string        `yaml:"citation"`
}

// FieldRecord is one field of a Record.
type FieldRecord struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Value string `yaml:"value,omitempty"`
}

// NewRecord captures in together with its rendered reference.
func NewRecord(in *citation.Instance, rendered string) Record {
	r := Record{
		Type:     in.Type().String(),
		Lang:     in.Lang().Code(),
		Fields:   make([]FieldRecord, 0, in.Len()),
		Citation: PlainText(rendered),
	}
	for i := 0; i < in.Len(); i++ {
		f := in.Field(i)
		r.Fields = append(r.Fields, FieldRecord{Key: f.Key, Label: f.Label, Value: in.Value(i)})
	}
	return r
}

// WriteYAML encodes r as a YAML document.
func (r Record) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return nil
}
