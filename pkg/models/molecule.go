package models

import "github.com/ansible-community/schemas/internal/schema"

// MoleculeScenarioSchema describes a molecule.yml scenario file.
func MoleculeScenarioSchema() (*schema.Schema, error) {
	props, err := newPropSet().
		set("dependency", &schema.Schema{
			Type:        "object",
			Description: "Dependency manager configuration.",
			Properties: map[string]*schema.Schema{
				"name":    {Type: "string", Enum: []string{"galaxy", "gilt", "shell"}},
				"enabled": {Type: "boolean"},
				"options": {Type: "object"},
			},
			Required: []string{"name"},
		}).
		set("driver", &schema.Schema{
			Type:        "object",
			Description: "Driver used to create test instances.",
			Properties: map[string]*schema.Schema{
				"name":    {Type: "string", Enum: []string{"azure", "ec2", "delegated", "docker", "gce", "openstack", "podman", "vagrant"}},
				"options": {Type: "object"},
			},
		}).
		set("platforms", &schema.Schema{
			Type:        "array",
			Description: "Instances molecule manages for the scenario.",
			Items: &schema.Schema{
				Type: "object",
				Properties: map[string]*schema.Schema{
					"name":            {Type: "string"},
					"image":           {Type: "string"},
					"pre_build_image": {Type: "boolean"},
					"privileged":      {Type: "boolean"},
					"command":         {Type: "string"},
					"groups":          {Type: "array", Items: &schema.Schema{Type: "string"}},
					"volumes":         {Type: "array", Items: &schema.Schema{Type: "string"}},
				},
				Required: []string{"name"},
			},
		}).
		set("provisioner", &schema.Schema{
			Type:        "object",
			Description: "Provisioner running the converge playbook.",
			Properties: map[string]*schema.Schema{
				"name":           {Type: "string", Enum: []string{"ansible"}},
				"env":            {Type: "object"},
				"inventory":      {Type: "object"},
				"playbooks":      {Type: "object"},
				"config_options": {Type: "object"},
			},
		}).
		set("verifier", &schema.Schema{
			Type:        "object",
			Description: "Verifier used to validate converged instances.",
			Properties: map[string]*schema.Schema{
				"name":    {Type: "string", Enum: []string{"ansible", "goss", "inspec", "testinfra"}},
				"options": {Type: "object"},
			},
			Required: []string{"name"},
		}).
		set("scenario", &schema.Schema{
			Type:        "object",
			Description: "Scenario sequence overrides.",
			Properties: map[string]*schema.Schema{
				"name":              {Type: "string"},
				"test_sequence":     {Type: "array", Items: &schema.Schema{Type: "string"}},
				"converge_sequence": {Type: "array", Items: &schema.Schema{Type: "string"}},
				"create_sequence":   {Type: "array", Items: &schema.Schema{Type: "string"}},
				"destroy_sequence":  {Type: "array", Items: &schema.Schema{Type: "string"}},
			},
		}).
		typed("prerun", "bool", "Run ansible-lint prerun phase before the scenario.").
		build()
	if err != nil {
		return nil, err
	}

	s := rootSchema("molecule", "Molecule Scenario Schema", "molecule.yml scenario configuration.")
	s.Type = "object"
	s.Properties = props
	return s, nil
}
