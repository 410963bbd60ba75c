package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "junbi",
	Short: "Local model-runner bootstrap",
	Long: "Junbi (準備) bootstraps the local environment for the skill assistant:\n" +
		"installing the Ollama runner, pulling its model set, managing the\n" +
		"background service, and installing the assistant's config and skill pack.",
	SilenceUsage: true,
}

// Execute runs the CLI. Failures have already been printed by cobra; the
// caller only needs the non-zero exit.
func Execute() error {
	return rootCmd.Execute()
}

// formatSize renders a byte count for humans.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
