package docdump

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Runner fans a module list out across a worker pool, one Extract call per
// module. The output directory is fully cleared before dispatch so that
// modules removed since the previous run never leave stale artifacts behind.
type Runner struct {
	Extractor *Extractor
	// Workers is the pool size; zero means the host's available parallelism.
	Workers int
	// Progress, when set, is advanced once per completed task, success or skip.
	Progress *Progress
}

// Run clears the output directory, dispatches every module to the pool and
// collects one Result per input name in completion order. A reset failure is
// fatal and returns before any worker starts; individual module failures are
// not.
func (r *Runner) Run(ctx context.Context, modules []string) ([]Result, error) {
	if err := r.reset(); err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(modules) {
		workers = len(modules)
	}

	work := make(chan string, len(modules))
	done := make(chan Result, len(modules))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for module := range work {
				done <- r.Extractor.Extract(ctx, module)
			}
		}()
	}

	for _, module := range modules {
		work <- module
	}
	close(work)

	go func() {
		wg.Wait()
		close(done)
	}()

	results := make([]Result, 0, len(modules))
	for res := range done {
		results = append(results, res)
		if r.Progress != nil {
			r.Progress.Advance()
		}
	}
	return results, nil
}

// reset deletes every pre-existing artifact in the output directory,
// creating the directory if needed.
func (r *Runner) reset() error {
	if err := os.MkdirAll(r.Extractor.OutDir, 0o755); err != nil {
		return fmt.Errorf("reset output directory: %w", err)
	}
	stale, err := filepath.Glob(filepath.Join(r.Extractor.OutDir, "*.json"))
	if err != nil {
		return fmt.Errorf("reset output directory: %w", err)
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("reset output directory: %w", err)
		}
	}
	return nil
}
