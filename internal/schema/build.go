package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Model is one entry in the schema catalog: a named model that can render
// itself as a JSON Schema document.
type Model struct {
	// Name is the model's display name, e.g. "playbook".
	Name string
	// Filename is the artifact basename without extension, e.g. "ansible-playbook".
	Filename string
	// Build renders the model's schema. An error here aborts the whole build.
	Build func() (*Schema, error)
}

// Build serializes every model in the catalog to <outDir>/<Filename>.json.
// The first error aborts the run: a partially wrong schema set is worse than
// no schema set.
func Build(outDir string, catalog []Model, logger *log.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create schema output directory: %w", err)
	}
	for _, m := range catalog {
		logger.Info("building schema", "name", m.Name)
		s, err := m.Build()
		if err != nil {
			return fmt.Errorf("build schema %s: %w", m.Name, err)
		}
		path := filepath.Join(outDir, m.Filename+".json")
		if err := writeSchema(path, s); err != nil {
			return fmt.Errorf("write schema %s: %w", m.Name, err)
		}
	}
	return nil
}

func writeSchema(path string, s *Schema) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
