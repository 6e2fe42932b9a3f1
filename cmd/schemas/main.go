// Package main provides the schemas CLI for rebuilding Ansible JSON Schemas.
package main

import (
	"os"

	"github.com/ansible-community/schemas/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
