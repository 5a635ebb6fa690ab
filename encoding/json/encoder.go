package json

import (
	"encoding/json"
)

type Encoder struct {
	indent string
}

func NewEncoder() *Encoder {
	return &Encoder{indent: "\t"}
}

// WithIndent sets the indent, empty for compact output
func (e *Encoder) WithIndent(indent string) *Encoder {
	e.indent = indent
	return e
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	if e.indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", e.indent)
}
