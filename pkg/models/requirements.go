package models

import "github.com/ansible-community/schemas/internal/schema"

// RequirementsFileSchema describes a requirements.yml file, in both the
// legacy role-list form and the modern roles/collections form.
func RequirementsFileSchema() (*schema.Schema, error) {
	roleProps, err := newPropSet().
		typed("name", "str", "Name or local override for the role.").
		typed("src", "str", "Source of the role: Galaxy name, URL or path.").
		typed("scm", "str", "SCM used to fetch the role, e.g. git or hg.").
		typed("version", "str", "Version, tag or branch to install.").
		build()
	if err != nil {
		return nil, err
	}
	role := &schema.Schema{
		AnyOf: []*schema.Schema{
			{Type: "string"},
			{Type: "object", Properties: roleProps, AdditionalProperties: schema.False()},
		},
	}

	collectionProps, err := newPropSet().
		typed("name", "str", "Collection name, URL or path.").
		typed("version", "str", "Version specifier of the collection.").
		typed("source", "str", "Galaxy server to install the collection from.").
		set("type", &schema.Schema{
			Type:        "string",
			Description: "How the name field is interpreted.",
			Enum:        []string{"file", "galaxy", "git", "url"},
		}).
		build()
	if err != nil {
		return nil, err
	}
	collection := &schema.Schema{
		AnyOf: []*schema.Schema{
			{Type: "string"},
			{Type: "object", Properties: collectionProps, Required: []string{"name"}, AdditionalProperties: schema.False()},
		},
	}

	s := rootSchema("ansible-requirements", "Ansible Requirements Schema", "requirements.yml listing role and collection dependencies.")
	s.OneOf = []*schema.Schema{
		{
			Type:        "array",
			Description: "Legacy form: a bare list of roles.",
			Items:       &schema.Schema{Ref: "#/definitions/role"},
		},
		{
			Type: "object",
			Properties: map[string]*schema.Schema{
				"roles":       {Type: "array", Items: &schema.Schema{Ref: "#/definitions/role"}},
				"collections": {Type: "array", Items: &schema.Schema{Ref: "#/definitions/collection"}},
			},
			AdditionalProperties: schema.False(),
		},
	}
	s.Definitions = map[string]*schema.Schema{
		"role":       role,
		"collection": collection,
	}
	return s, nil
}
