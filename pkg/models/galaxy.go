package models

import "github.com/ansible-community/schemas/internal/schema"

// GalaxyFileSchema describes a collection's galaxy.yml manifest.
func GalaxyFileSchema() (*schema.Schema, error) {
	props, err := newPropSet().
		typed("namespace", "str", "Namespace of the collection.").
		typed("name", "str", "Name of the collection.").
		typed("version", "str", "Semantic version of the collection.").
		typed("readme", "path", "Path to the README file, relative to the collection root.").
		typedList("authors", "str", "Collection authors, in 'Name <email>' format.").
		typed("description", "str", "Short summary of the collection.").
		typedList("license", "str", "SPDX license identifiers.").
		typed("license_file", "path", "Path to the license file, mutually exclusive with license.").
		typedList("tags", "str", "Galaxy search tags.").
		typed("repository", "str", "URL of the originating SCM repository.").
		typed("documentation", "str", "URL to the collection documentation.").
		typed("homepage", "str", "URL to the collection homepage.").
		typed("issues", "str", "URL to the collection issue tracker.").
		typedList("build_ignore", "str", "Patterns to exclude from the built artifact.").
		set("dependencies", &schema.Schema{
			Type:                 "object",
			Description:          "Collections this collection depends on, mapped to version specifiers.",
			AdditionalProperties: schema.False(),
			PatternProperties: map[string]*schema.Schema{
				"^[a-z0-9_]+\\.[a-z0-9_]+$": {Type: "string"},
			},
		}).
		build()
	if err != nil {
		return nil, err
	}

	props["namespace"].Pattern = "^[a-z][a-z0-9_]+$"
	props["name"].Pattern = "^[a-z][a-z0-9_]+$"
	props["version"].Pattern = "^\\d+\\.\\d+\\.\\d+"

	s := rootSchema("ansible-galaxy", "Ansible Galaxy Collection Metadata Schema", "galaxy.yml manifest of an Ansible collection.")
	s.Type = "object"
	s.Properties = props
	s.Required = []string{"namespace", "name", "version", "readme", "authors"}
	s.AdditionalProperties = schema.False()
	return s, nil
}
