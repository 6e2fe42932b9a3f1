package models

import "github.com/ansible-community/schemas/internal/schema"

// AnsibleLintSchema describes the .ansible-lint configuration file.
func AnsibleLintSchema() (*schema.Schema, error) {
	props, err := newPropSet().
		typedList("exclude_paths", "path", "Paths to exclude from linting.").
		typed("parseable", "bool", "Emit parseable (pep8 style) output.").
		typed("quiet", "bool", "Only print rule violations.").
		typedList("rulesdir", "path", "Additional directories to load rules from.").
		typedList("skip_list", "str", "Rule ids or tags to skip.").
		typedList("warn_list", "str", "Rule ids or tags that warn instead of fail.").
		typedList("enable_list", "str", "Opt-in rule ids to enable.").
		typedList("tags", "str", "Only check rules with these tags.").
		typed("use_default_rules", "bool", "Keep default rules when rulesdir is set.").
		typed("verbosity", "int", "Verbosity level.").
		typed("offline", "bool", "Disable installation of requirements during linting.").
		typed("loop_var_prefix", "str", "Regex for required loop variable prefixes.").
		typedList("mock_modules", "str", "Modules to mock during syntax check.").
		typedList("mock_roles", "str", "Roles to mock during syntax check.").
		set("kinds", &schema.Schema{
			Type:        "array",
			Description: "Custom file kind detection, mapping kind names to glob patterns.",
			Items: &schema.Schema{
				Type:                 "object",
				AdditionalProperties: schema.False(),
				PatternProperties: map[string]*schema.Schema{
					"^[a-z0-9-]+$": {Type: "string"},
				},
			},
		}).
		build()
	if err != nil {
		return nil, err
	}

	s := rootSchema("ansible-lint", "Ansible-lint Configuration Schema", "Configuration file for ansible-lint.")
	s.Type = "object"
	s.Properties = props
	s.AdditionalProperties = schema.False()
	return s, nil
}
