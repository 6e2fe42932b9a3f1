package cli

import (
	"github.com/spf13/cobra"

	"github.com/ansible-community/schemas/internal/galaxy"
)

func newPlatformsCommand() *cobra.Command {
	var (
		apiURL     string
		outPath    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Refresh the Galaxy platforms table",
		Long: `Fetch the paginated list of platforms from the Galaxy API and rewrite
the generated platforms table consumed by the meta schema. This is a one-shot
refresh utility, expected to run rarely.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			override(&apiURL, cfg.Platforms.APIURL, cmd.Flags().Changed("api-url"))
			override(&outPath, cfg.Platforms.Out, cmd.Flags().Changed("out"))

			logger := newLogger()
			logger.Info("dumping Galaxy platforms", "url", apiURL, "file", outPath)

			platforms, err := galaxy.FetchPlatforms(cmd.Context(), nil, apiURL)
			if err != nil {
				return err
			}
			if err := galaxy.WritePlatformsFile(outPath, platforms); err != nil {
				return err
			}
			logger.Info("platforms table written", "platforms", len(platforms))
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", galaxy.DefaultAPIURL, "Galaxy API base URL")
	cmd.Flags().StringVar(&outPath, "out", "pkg/models/platforms_gen.go", "Generated file to write")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to .schemas.yml config file")

	return cmd
}
