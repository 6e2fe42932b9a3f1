package models

import "github.com/ansible-community/schemas/internal/schema"

// ZuulConfigSchema describes a .zuul.yaml configuration file. Not an Ansible
// schema strictly speaking, but kept in the catalog for convenience.
func ZuulConfigSchema() (*schema.Schema, error) {
	jobProps, err := newPropSet().
		typed("name", "str", "Job name.").
		typed("parent", "str", "Job to inherit from.").
		typed("description", "str", "Job description.").
		typed("run", "raw", "Playbook or playbooks to run.").
		typed("vars", "dict", "Variables passed to the job playbooks.").
		typed("nodeset", "raw", "Nodeset name or inline definition.").
		typed("voting", "bool", "Whether the job result gates the change.").
		typed("timeout", "int", "Job timeout in seconds.").
		typedList("files", "str", "Only run when these files change.").
		typedList("required-projects", "str", "Projects checked out alongside the job.").
		build()
	if err != nil {
		return nil, err
	}

	projectProps, err := newPropSet().
		typed("name", "str", "Project name.").
		typedList("templates", "str", "Project templates to apply.").
		build()
	if err != nil {
		return nil, err
	}
	// pipelines reference free-form job lists
	projectSchema := &schema.Schema{Type: "object", Properties: projectProps}

	item := &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"job":              {Type: "object", Properties: jobProps, Required: []string{"name"}},
			"project":          projectSchema,
			"project-template": {Type: "object"},
			"pipeline": {
				Type: "object",
				Properties: map[string]*schema.Schema{
					"name":    {Type: "string"},
					"manager": {Type: "string", Enum: []string{"dependent", "independent", "serial", "supercedent"}},
				},
				Required: []string{"name", "manager"},
			},
			"nodeset": {Type: "object"},
			"secret":  {Type: "object"},
		},
		AdditionalProperties: schema.False(),
	}

	s := rootSchema("zuul", "Zuul Configuration Schema", "A .zuul.yaml configuration file.")
	s.Type = "array"
	s.Items = item
	return s, nil
}
