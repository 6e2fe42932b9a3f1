package schema

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestBuildWritesEveryModel(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "f")
	catalog := []Model{
		{
			Name:     "alpha",
			Filename: "ansible-alpha",
			Build: func() (*Schema, error) {
				return &Schema{Title: "Alpha", Type: "object"}, nil
			},
		},
		{
			Name:     "beta",
			Filename: "beta",
			Build: func() (*Schema, error) {
				return &Schema{Title: "Beta", Type: "array", Items: &Schema{Type: "string"}}, nil
			},
		},
	}

	require.NoError(t, Build(outDir, catalog, discardLogger()))

	alpha, err := os.ReadFile(filepath.Join(outDir, "ansible-alpha.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"title\": \"Alpha\",\n  \"type\": \"object\"\n}\n", string(alpha))

	beta, err := os.ReadFile(filepath.Join(outDir, "beta.json"))
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(beta, []byte("\n")), "artifact must end with a newline")
}

func TestBuildAbortsOnModelError(t *testing.T) {
	outDir := t.TempDir()
	catalog := []Model{
		{
			Name:     "broken",
			Filename: "broken",
			Build: func() (*Schema, error) {
				_, err := MapType("binary")
				return nil, err
			},
		},
		{
			Name:     "never-built",
			Filename: "never-built",
			Build: func() (*Schema, error) {
				t.Fatal("build must abort before reaching later models")
				return nil, nil
			},
		},
	}

	err := Build(outDir, catalog, discardLogger())
	require.Error(t, err)

	var ute *UnsupportedTypeError
	assert.True(t, errors.As(err, &ute), "unsupported tag must surface through the build error")
	assert.NoFileExists(t, filepath.Join(outDir, "broken.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "never-built.json"))
}

func TestEncodeSortsMapKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, map[string]any{"b": 2, "a": 1, "c": 3}))
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2,\n  \"c\": 3\n}\n", buf.String())
}
