package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/download"
	"github.com/ThatCatDev/junbi/internal/logging"
	"github.com/ThatCatDev/junbi/internal/skills"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the assistant config and install the skill pack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureDirs(); err != nil {
			return err
		}
		defer logging.Setup(config.LogsDir(), "init")()

		cfg := config.Load()

		installed, err := skills.InstallPack(config.SkillsDir())
		if err != nil {
			return fmt.Errorf("install skill pack: %w", err)
		}
		fmt.Printf("Installed %d skill(s) into %s\n", len(installed), config.SkillsDir())

		catalog, warning := download.Catalog(config.CatalogFile())
		if warning != "" {
			fmt.Printf("warning: %s\n", warning)
		}
		modelCatalog := make(map[string]string, len(catalog))
		for _, s := range catalog {
			modelCatalog[s.ID] = s.Label
		}

		assistant := config.Assistant{
			Model: cfg.DefaultModel,
			Provider: config.Provider{
				Name:         "ollama",
				Endpoint:     cfg.Endpoint,
				ModelCatalog: modelCatalog,
			},
		}
		if err := config.WriteAssistant(config.AssistantConfigFile(), assistant); err != nil {
			return err
		}
		fmt.Printf("Wrote assistant config to %s\n", config.AssistantConfigFile())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
