package docdump

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultByModule(results []Result) map[string]Result {
	byModule := make(map[string]Result, len(results))
	for _, res := range results {
		byModule[res.Module] = res
	}
	return byModule
}

func TestRunAllSucceed(t *testing.T) {
	ex := newTestExtractor(t)
	runner := &Runner{Extractor: ex}

	modules := []string{"ping", "copy", "file", "user", "service"}
	results, err := runner.Run(context.Background(), modules)
	require.NoError(t, err)
	require.Len(t, results, len(modules))

	byModule := resultByModule(results)
	for _, module := range modules {
		res, ok := byModule[module]
		require.True(t, ok, "missing result for %s", module)
		assert.False(t, res.Skipped)
		assert.FileExists(t, filepath.Join(ex.OutDir, module+".json"))
	}
}

func TestRunPartialFailure(t *testing.T) {
	ex := newTestExtractor(t)
	runner := &Runner{Extractor: ex}

	modules := []string{"ping", "foo", "copy"}
	results, err := runner.Run(context.Background(), modules)
	require.NoError(t, err, "one bad module must not abort the batch")
	require.Len(t, results, len(modules))

	byModule := resultByModule(results)
	assert.True(t, byModule["foo"].Skipped)
	assert.NoFileExists(t, filepath.Join(ex.OutDir, "foo.json"))
	assert.FileExists(t, filepath.Join(ex.OutDir, "ping.json"))
	assert.FileExists(t, filepath.Join(ex.OutDir, "copy.json"))
}

func TestRunRemovesStaleArtifacts(t *testing.T) {
	ex := newTestExtractor(t)
	stale := filepath.Join(ex.OutDir, "removed_module.json")
	require.NoError(t, os.WriteFile(stale, []byte("{}\n"), 0o644))

	runner := &Runner{Extractor: ex}
	_, err := runner.Run(context.Background(), []string{"ping"})
	require.NoError(t, err)

	assert.NoFileExists(t, stale, "artifacts for modules no longer in the list must be deleted")
	assert.FileExists(t, filepath.Join(ex.OutDir, "ping.json"))
}

func TestRunIsReproducible(t *testing.T) {
	ex := newTestExtractor(t)
	runner := &Runner{Extractor: ex}
	modules := []string{"ping", "copy"}

	read := func() map[string][]byte {
		t.Helper()
		out := map[string][]byte{}
		for _, module := range modules {
			raw, err := os.ReadFile(filepath.Join(ex.OutDir, module+".json"))
			require.NoError(t, err)
			out[module] = raw
		}
		return out
	}

	_, err := runner.Run(context.Background(), modules)
	require.NoError(t, err)
	first := read()

	_, err = runner.Run(context.Background(), modules)
	require.NoError(t, err)
	second := read()

	for _, module := range modules {
		assert.True(t, bytes.Equal(first[module], second[module]),
			"artifact for %s differs between runs", module)
	}
}

func TestRunAdvancesProgressPerTask(t *testing.T) {
	ex := newTestExtractor(t)
	var buf bytes.Buffer
	prog := NewProgress(&buf, 4)
	runner := &Runner{Extractor: ex, Progress: prog}

	// Two successes, one tool failure, one parse failure: the counter moves
	// once per dispatched task regardless of outcome.
	_, err := runner.Run(context.Background(), []string{"ping", "foo", "badjson", "copy"})
	require.NoError(t, err)

	assert.Equal(t, 4, prog.Done())
	assert.Equal(t, 4, strings.Count(buf.String(), "\r"), "one redraw per completed task")
	assert.Contains(t, buf.String(), "4/4 modules")
}

func TestRunEmptyModuleList(t *testing.T) {
	ex := newTestExtractor(t)
	runner := &Runner{Extractor: ex}

	results, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunResetFailureIsFatal(t *testing.T) {
	ex := newTestExtractor(t)
	// Make the output path a file so MkdirAll fails before dispatch.
	blocked := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	ex.OutDir = blocked

	runner := &Runner{Extractor: ex}
	_, err := runner.Run(context.Background(), []string{"ping"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset output directory")
}

func TestRunDuplicateModules(t *testing.T) {
	ex := newTestExtractor(t)
	runner := &Runner{Extractor: ex}

	results, err := runner.Run(context.Background(), []string{"ping", "ping"})
	require.NoError(t, err)
	assert.Len(t, results, 2, "duplicates do redundant but harmless work")
	assert.FileExists(t, filepath.Join(ex.OutDir, "ping.json"))
}
