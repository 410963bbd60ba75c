package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the public Ollama model library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		max, _ := cmd.Flags().GetInt("max-results")

		models, err := search.Library(cmd.Context(), args[0], max)
		if err != nil {
			return fmt.Errorf("library search: %w", err)
		}
		if len(models) == 0 {
			fmt.Printf("No models found for %q.\n", args[0])
			return nil
		}

		for _, m := range models {
			fmt.Printf("  %s\n", m.Name)
			if m.Description != "" {
				fmt.Printf("      %s\n", m.Description)
			}
		}
		fmt.Println("\nDownload with 'junbi pull <name>[:tag]'.")
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("max-results", 10, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
