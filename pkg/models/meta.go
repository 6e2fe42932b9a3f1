package models

import (
	"slices"

	"github.com/ansible-community/schemas/internal/schema"
)

// MetaSchema describes a role's meta/main.yml.
func MetaSchema() (*schema.Schema, error) {
	galaxyInfo, err := newPropSet().
		typed("role_name", "str", "Role name override.").
		typed("author", "str", "Role author.").
		typed("description", "str", "Short role description.").
		typed("company", "str", "Company or organization.").
		typed("license", "str", "License of the role.").
		typed("min_ansible_version", "str", "Minimum supported Ansible version.").
		typed("min_ansible_container_version", "str", "Minimum supported ansible-container version.").
		typedList("galaxy_tags", "str", "Galaxy search tags.").
		set("platforms", &schema.Schema{
			Type:        "array",
			Description: "Platforms the role supports.",
			Items: &schema.Schema{
				Type: "object",
				Properties: map[string]*schema.Schema{
					"name": {
						Type: "string",
						Enum: platformNames(),
					},
					"versions": {
						Type:  "array",
						Items: &schema.Schema{Type: "string"},
					},
				},
				Required:             []string{"name"},
				AdditionalProperties: schema.False(),
			},
		}).
		build()
	if err != nil {
		return nil, err
	}

	props, err := newPropSet().
		typed("allow_duplicates", "bool", "Allow the role to be listed twice in a play.").
		set("galaxy_info", &schema.Schema{
			Type:       "object",
			Properties: galaxyInfo,
		}).
		set("dependencies", &schema.Schema{
			Type:        "array",
			Description: "Roles this role depends on.",
			Items: &schema.Schema{
				AnyOf: []*schema.Schema{
					{Type: "string"},
					{Type: "object"},
				},
			},
		}).
		build()
	if err != nil {
		return nil, err
	}

	s := rootSchema("ansible-meta", "Ansible Role Metadata Schema", "meta/main.yml of an Ansible role.")
	s.Type = "object"
	s.Properties = props
	return s, nil
}

// platformNames returns the generated Galaxy platform names, sorted so the
// emitted enum is stable.
func platformNames() []string {
	names := make([]string, 0, len(GalaxyPlatforms))
	for name := range GalaxyPlatforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
