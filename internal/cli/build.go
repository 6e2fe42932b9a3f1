package cli

import (
	"github.com/spf13/cobra"

	"github.com/ansible-community/schemas/internal/schema"
	"github.com/ansible-community/schemas/pkg/models"
)

func newBuildCommand() *cobra.Command {
	var (
		outDir     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the JSON Schema artifacts from the model catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			override(&outDir, cfg.Build.Out, cmd.Flags().Changed("out"))
			return schema.Build(outDir, models.Catalog(), newLogger())
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "f", "Directory for schema artifacts")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to .schemas.yml config file")

	return cmd
}
