package models

import "github.com/ansible-community/schemas/internal/schema"

// VarsSchema describes a vars file: a mapping of valid variable names to
// arbitrary values.
func VarsSchema() (*schema.Schema, error) {
	s := rootSchema("ansible-vars", "Ansible Vars Schema", "A variables file: a mapping of variable names to values.")
	s.Type = "object"
	s.PatternProperties = map[string]*schema.Schema{
		"^[a-zA-Z_][a-zA-Z0-9_]*$": {
			Description: "Any value assigned to the variable.",
		},
	}
	s.AdditionalProperties = schema.False()
	return s, nil
}
