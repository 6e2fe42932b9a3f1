package models

import "github.com/ansible-community/schemas/internal/schema"

// taskSchema is the subschema for a single task, shared between the tasks
// list and the playbook model via definitions.
func taskSchema() (*schema.Schema, error) {
	props, err := newPropSet().
		typed("name", "str", "Human readable task name.").
		typed("when", "raw", "Conditional expression deciding whether the task runs.").
		typed("register", "str", "Variable name to store the task result in.").
		typed("ignore_errors", "bool", "Continue the play when the task fails.").
		typed("changed_when", "raw", "Expression overriding the changed status.").
		typed("failed_when", "raw", "Expression overriding the failed status.").
		typed("retries", "int", "Number of retries for until loops.").
		typed("delay", "int", "Seconds between retries.").
		typed("until", "raw", "Retry the task until this expression is true.").
		typed("delegate_to", "str", "Host to run the task on instead of the target.").
		typed("run_once", "bool", "Run the task on a single host only.").
		typed("become", "bool", "Activate privilege escalation.").
		typed("become_user", "str", "User to become for the task.").
		typed("become_method", "str", "Privilege escalation method.").
		typed("no_log", "bool", "Censor task output in logs.").
		typed("vars", "dict", "Task scoped variables.").
		typed("environment", "dict", "Environment variables for the task.").
		typed("loop", "raw", "Items to iterate the task over.").
		typed("loop_control", "dict", "Loop behaviour tweaks.").
		typed("any_errors_fatal", "bool", "Abort the whole play on the first failure.").
		typed("throttle", "int", "Limit concurrent executions of the task.").
		typedList("tags", "str", "Tags applied to the task.").
		typedList("notify", "str", "Handlers to notify on change.").
		set("block", &schema.Schema{Type: "array", Description: "Tasks grouped in a block.", Items: &schema.Schema{Ref: "#/definitions/task"}}).
		set("rescue", &schema.Schema{Type: "array", Description: "Tasks run when the block fails.", Items: &schema.Schema{Ref: "#/definitions/task"}}).
		set("always", &schema.Schema{Type: "array", Description: "Tasks always run after the block.", Items: &schema.Schema{Ref: "#/definitions/task"}}).
		build()
	if err != nil {
		return nil, err
	}

	return &schema.Schema{
		Type:       "object",
		Properties: props,
		// module invocations are free-form keys, so the object stays open
	}, nil
}

// TasksListSchema describes a tasks file: a list of tasks.
func TasksListSchema() (*schema.Schema, error) {
	task, err := taskSchema()
	if err != nil {
		return nil, err
	}

	s := rootSchema("ansible-tasks", "Ansible Tasks File Schema", "A file containing a list of Ansible tasks.")
	s.Type = "array"
	s.Items = &schema.Schema{Ref: "#/definitions/task"}
	s.Definitions = map[string]*schema.Schema{"task": task}
	return s, nil
}
