package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/download"
	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/logging"
)

var pullCmd = &cobra.Command{
	Use:   "pull [model ...]",
	Short: "Download model weights",
	Long: `Download models through the runner, one at a time.

With no arguments the whole curated catalog is pulled. A failing model is
reported and the batch continues.

Examples:
  junbi pull
  junbi pull qwen2.5-coder:7b
  junbi pull --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, warning := download.Catalog(config.CatalogFile())
		if warning != "" {
			fmt.Printf("warning: %s\n", warning)
		}

		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, s := range catalog {
				fmt.Printf("  %-24s %-22s %s\n", s.ID, s.Label, formatSize(s.Size))
			}
			return nil
		}

		defer logging.Setup(config.LogsDir(), "pull")()

		selection := catalog
		if len(args) > 0 {
			selection = download.Select(catalog, args)
		}

		results, err := download.New(execx.New()).Pull(cmd.Context(), selection)
		if err != nil {
			return err
		}

		if failed := download.Failed(results); failed > 0 {
			return fmt.Errorf("%d of %d model(s) failed to download", failed, len(results))
		}
		fmt.Printf("\nAll %d model(s) downloaded.\n", len(results))
		return nil
	},
}

func init() {
	pullCmd.Flags().Bool("list", false, "print the curated model catalog and exit")
	rootCmd.AddCommand(pullCmd)
}
