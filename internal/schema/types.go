// Package schema holds the JSON Schema object model shared by the schema
// build driver and the documentation dump pipeline, plus the mapping from
// Ansible type tags to JSON Schema types.
package schema

import (
	"encoding/json"
	"io"
)

// Schema represents a JSON Schema document or subschema. Only the keywords
// the Ansible schemas actually use are modeled; everything is omitempty so
// that emitted documents stay minimal.
type Schema struct {
	SchemaURI            string             `json:"$schema,omitempty"`
	ID                   string             `json:"$id,omitempty"`
	Ref                  string             `json:"$ref,omitempty"`
	Title                string             `json:"title,omitempty"`
	Description          string             `json:"description,omitempty"`
	MarkdownDescription  string             `json:"markdownDescription,omitempty"`
	Type                 string             `json:"type,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	Pattern              string             `json:"pattern,omitempty"`
	Format               string             `json:"format,omitempty"`
	Minimum              *float64           `json:"minimum,omitempty"`
	Maximum              *float64           `json:"maximum,omitempty"`
	AnyOf                []*Schema          `json:"anyOf,omitempty"`
	OneOf                []*Schema          `json:"oneOf,omitempty"`
	Definitions          map[string]*Schema `json:"definitions,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
}

// Encode writes v to w in the canonical artifact form: 2-space indentation,
// lexicographically ordered map keys (encoding/json sorts them), no HTML
// escaping, and a trailing newline. Every on-disk artifact this tool
// produces goes through Encode so that rebuilds are byte-for-byte stable.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// False returns a pointer to false, for use with AdditionalProperties.
func False() *bool {
	b := false
	return &b
}
