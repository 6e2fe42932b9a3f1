// Package models is the catalog of schema models the build driver
// serializes. Each model renders one JSON Schema artifact; field types are
// declared with Ansible type tags and mapped to JSON Schema types, so a tag
// outside the known set aborts the build instead of guessing.
package models

import (
	"github.com/ansible-community/schemas/internal/schema"
)

const schemaDraft = "http://json-schema.org/draft-07/schema#"

const schemaBaseURL = "https://raw.githubusercontent.com/ansible-community/schemas/main/f/"

// Catalog returns every known schema model in build order.
func Catalog() []schema.Model {
	return []schema.Model{
		{Name: "ansible-lint", Filename: "ansible-lint", Build: AnsibleLintSchema},
		{Name: "galaxy", Filename: "ansible-galaxy", Build: GalaxyFileSchema},
		{Name: "meta", Filename: "ansible-meta", Build: MetaSchema},
		{Name: "molecule", Filename: "molecule", Build: MoleculeScenarioSchema},
		{Name: "playbook", Filename: "ansible-playbook", Build: PlaybookFileSchema},
		{Name: "requirements", Filename: "ansible-requirements", Build: RequirementsFileSchema},
		{Name: "tasks", Filename: "ansible-tasks", Build: TasksListSchema},
		{Name: "vars", Filename: "ansible-vars", Build: VarsSchema},
		{Name: "zuul", Filename: "zuul", Build: ZuulConfigSchema},
	}
}

func rootSchema(filename, title, description string) *schema.Schema {
	return &schema.Schema{
		SchemaURI:   schemaDraft,
		ID:          schemaBaseURL + filename + ".json",
		Title:       title,
		Description: description,
	}
}

// propSet accumulates schema properties. Fields declared with an Ansible
// type tag go through schema.MapType; the first unmappable tag is remembered
// and surfaces from build().
type propSet struct {
	props map[string]*schema.Schema
	err   error
}

func newPropSet() *propSet {
	return &propSet{props: map[string]*schema.Schema{}}
}

// set adds a hand-built subschema.
func (p *propSet) set(name string, s *schema.Schema) *propSet {
	p.props[name] = s
	return p
}

// typed adds a scalar field declared with an Ansible type tag.
func (p *propSet) typed(name, tag, description string) *propSet {
	if p.err != nil {
		return p
	}
	t, err := schema.MapType(tag)
	if err != nil {
		p.err = err
		return p
	}
	p.props[name] = &schema.Schema{Type: t, Description: description}
	return p
}

// typedList adds a list field whose items are declared with an Ansible type tag.
func (p *propSet) typedList(name, itemTag, description string) *propSet {
	if p.err != nil {
		return p
	}
	t, err := schema.MapType(itemTag)
	if err != nil {
		p.err = err
		return p
	}
	p.props[name] = &schema.Schema{
		Type:        "array",
		Description: description,
		Items:       &schema.Schema{Type: t},
	}
	return p
}

func (p *propSet) build() (map[string]*schema.Schema, error) {
	return p.props, p.err
}
