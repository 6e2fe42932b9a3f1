// Package docdump dumps sanitized per-module documentation by invoking an
// external documentation tool once per module across a fixed-size worker
// pool. Tool failures are recorded and skipped, never retried; the batch
// always runs to completion.
package docdump

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ansible-community/schemas/internal/schema"
)

// Result is the outcome of one module extraction. Either the module's
// sanitized documentation was persisted at Path, or the module was skipped
// and Err holds the reason. Never both.
type Result struct {
	Module  string
	Path    string
	Skipped bool
	Err     error
}

// volatileDocFields are removed from every dump. The filename is an absolute
// path that breaks reproducible builds; the rest are unused downstream and
// only inflate the artifacts.
var volatileDocFields = []string{"filename", "author", "notes", "examples", "return"}

// Extractor dumps documentation for single modules. Safe for concurrent use:
// each Extract call owns a distinct output file.
type Extractor struct {
	// Tool is the documentation tool binary, e.g. "ansible-doc".
	Tool string
	// OutDir is where per-module artifacts are written.
	OutDir string
	Logger *log.Logger
}

// Extract invokes `<tool> -j <module>`, strips the volatile fields from the
// module's doc section and writes the result to <OutDir>/<module>.json.
// Any tool or parse failure is recoverable: the module is logged and skipped
// and no file is written.
func (e *Extractor) Extract(ctx context.Context, module string) Result {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Tool, "-j", module)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return e.skip(module, fmt.Errorf("export documentation: %w", err))
	}

	doc, err := sanitize(out.Bytes(), module)
	if err != nil {
		return e.skip(module, err)
	}

	path := filepath.Join(e.OutDir, module+".json")
	if err := writeDoc(path, doc); err != nil {
		return e.skip(module, err)
	}
	return Result{Module: module, Path: path}
}

func (e *Extractor) skip(module string, err error) Result {
	e.Logger.Warn("module skipped", "module", module, "err", err)
	return Result{Module: module, Skipped: true, Err: err}
}

// sanitize parses the tool's JSON output, locates the module's entry and
// deletes the volatile fields from its "doc" section. A missing field is a
// no-op; a missing module entry is an error.
func sanitize(raw []byte, module string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse documentation output: %w", err)
	}
	entry, ok := data[module].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("documentation output has no %q entry", module)
	}
	if doc, ok := entry["doc"].(map[string]any); ok {
		for _, field := range volatileDocFields {
			delete(doc, field)
		}
	}
	return data, nil
}

func writeDoc(path string, doc map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := schema.Encode(f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
