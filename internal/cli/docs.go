package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ansible-community/schemas/internal/docdump"
)

// DocsConfig holds configuration for the docs command.
type DocsConfig struct {
	Tool        string
	OutDir      string
	ModulesFile string
	Workers     int
	ConfigPath  string
}

func newDocsCommand() *cobra.Command {
	var config DocsConfig

	cmd := &cobra.Command{
		Use:   "docs [module...]",
		Short: "Dump sanitized documentation for every known module",
		Long: `Dump documentation for each module by invoking the documentation tool
once per module across a worker pool. Volatile fields (filename, author,
notes, examples, return) are stripped so repeated dumps are byte-identical.
Modules whose documentation export fails are skipped, not retried.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyDocsConfigFile(cmd, &config)
			return DumpDocs(cmd.Context(), &config, args)
		},
	}

	cmd.Flags().StringVar(&config.Tool, "tool", "ansible-doc", "Documentation tool to invoke")
	cmd.Flags().StringVar(&config.OutDir, "out", "data/modules", "Directory for per-module artifacts")
	cmd.Flags().StringVar(&config.ModulesFile, "modules-file", "", "File with one module name per line")
	cmd.Flags().IntVar(&config.Workers, "workers", 0, "Worker pool size (default: available parallelism)")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .schemas.yml config file")

	return cmd
}

func applyDocsConfigFile(cmd *cobra.Command, config *DocsConfig) {
	cfg, err := loadConfigFile(config.ConfigPath)
	if err != nil {
		newLogger().Fatal("cannot load config", "err", err)
	}
	override(&config.Tool, cfg.Docs.Tool, cmd.Flags().Changed("tool"))
	override(&config.OutDir, cfg.Docs.Out, cmd.Flags().Changed("out"))
	override(&config.ModulesFile, cfg.Docs.ModulesFile, cmd.Flags().Changed("modules-file"))
	override(&config.Workers, cfg.Docs.Workers, cmd.Flags().Changed("workers"))
}

// DumpDocs resolves the module list and runs the extraction batch.
func DumpDocs(ctx context.Context, config *DocsConfig, args []string) error {
	logger := newLogger()

	modules, err := resolveModules(ctx, config, args)
	if err != nil {
		return err
	}
	logger.Debug("module list resolved", "count", len(modules))

	runner := &docdump.Runner{
		Extractor: &docdump.Extractor{
			Tool:   config.Tool,
			OutDir: config.OutDir,
			Logger: logger,
		},
		Workers:  config.Workers,
		Progress: docdump.NewProgress(os.Stderr, len(modules)),
	}

	results, err := runner.Run(ctx, modules)
	if err != nil {
		return err
	}

	var skipped []string
	for _, res := range results {
		if res.Skipped {
			skipped = append(skipped, res.Module)
		}
	}
	slices.Sort(skipped)

	fmt.Fprintln(os.Stderr, successStyle.Render(
		fmt.Sprintf("%d of %d modules dumped to %s", len(results)-len(skipped), len(results), config.OutDir)))
	if len(skipped) > 0 {
		fmt.Fprintln(os.Stderr, warningStyle.Render(
			fmt.Sprintf("%d skipped: %s", len(skipped), strings.Join(skipped, ", "))))
	}
	return nil
}

// resolveModules picks the module list: positional args win, then the
// modules file, then discovery via the tool itself. Coming up empty-handed
// is fatal.
func resolveModules(ctx context.Context, config *DocsConfig, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if config.ModulesFile != "" {
		return readModulesFile(config.ModulesFile)
	}
	modules, err := discoverModules(ctx, config.Tool)
	if err != nil {
		return nil, fmt.Errorf("discover modules: %w", err)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("discover modules: %s reported no modules", config.Tool)
	}
	return modules, nil
}

// readModulesFile reads one module name per line, skipping blanks and
// comment lines.
func readModulesFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read modules file: %w", err)
	}
	var modules []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		modules = append(modules, line)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("modules file %s lists no modules", path)
	}
	return modules, nil
}

// discoverModules asks the tool for its module list (`<tool> -l -j` emits a
// JSON object keyed by module name) and returns the names sorted.
func discoverModules(ctx context.Context, tool string) ([]string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, "-l", "-j")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	var listing map[string]any
	if err := json.Unmarshal(out.Bytes(), &listing); err != nil {
		return nil, fmt.Errorf("parse module listing: %w", err)
	}
	modules := make([]string, 0, len(listing))
	for name := range listing {
		modules = append(modules, name)
	}
	slices.Sort(modules)
	return modules, nil
}
