package models

import "github.com/ansible-community/schemas/internal/schema"

// PlaybookFileSchema describes a playbook: a list of plays.
func PlaybookFileSchema() (*schema.Schema, error) {
	task, err := taskSchema()
	if err != nil {
		return nil, err
	}

	taskList := func(description string) *schema.Schema {
		return &schema.Schema{
			Type:        "array",
			Description: description,
			Items:       &schema.Schema{Ref: "#/definitions/task"},
		}
	}

	playProps, err := newPropSet().
		typed("name", "str", "Human readable play name.").
		typed("hosts", "raw", "Hosts or groups the play targets.").
		typed("gather_facts", "bool", "Gather facts before running tasks.").
		typed("become", "bool", "Activate privilege escalation for the play.").
		typed("become_user", "str", "User to become.").
		typed("become_method", "str", "Privilege escalation method.").
		typed("remote_user", "str", "User to connect as.").
		typed("connection", "str", "Connection plugin for the play.").
		typed("strategy", "str", "Execution strategy plugin.").
		typed("serial", "raw", "Batch size for rolling updates.").
		typed("max_fail_percentage", "int", "Abort when more than this percentage of hosts fail.").
		typed("any_errors_fatal", "bool", "Abort the play on the first host failure.").
		typed("vars", "dict", "Play scoped variables.").
		typed("environment", "dict", "Environment variables for the play.").
		typedList("vars_files", "path", "Files with additional play variables.").
		typedList("tags", "str", "Tags applied to the play.").
		set("roles", &schema.Schema{
			Type:        "array",
			Description: "Roles applied to the play.",
			Items: &schema.Schema{
				AnyOf: []*schema.Schema{
					{Type: "string"},
					{Type: "object"},
				},
			},
		}).
		set("vars_prompt", &schema.Schema{
			Type:        "array",
			Description: "Interactive variable prompts.",
			Items:       &schema.Schema{Type: "object"},
		}).
		set("tasks", taskList("Main task list of the play.")).
		set("pre_tasks", taskList("Tasks run before roles.")).
		set("post_tasks", taskList("Tasks run after the main task list.")).
		set("handlers", taskList("Handlers notified by tasks.")).
		build()
	if err != nil {
		return nil, err
	}

	s := rootSchema("ansible-playbook", "Ansible Playbook Schema", "A playbook file: a list of plays.")
	s.Type = "array"
	s.Items = &schema.Schema{Ref: "#/definitions/play"}
	s.Definitions = map[string]*schema.Schema{
		"play": {
			Type:       "object",
			Properties: playProps,
			Required:   []string{"hosts"},
		},
		"task": task,
	}
	return s, nil
}
