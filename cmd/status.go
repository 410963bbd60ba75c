package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/install"
	"github.com/ThatCatDev/junbi/internal/ollama"
	"github.com/ThatCatDev/junbi/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the state of the local environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		rep := status.New(
			install.New(execx.New()),
			ollama.NewClient(cfg.Endpoint),
			config.AssistantConfigFile(),
			config.SkillsDir(),
		).Report(cmd.Context())

		fmt.Print(status.Render(rep))

		if !rep.Healthy() {
			fmt.Println("\nSome components need attention; see the hints above.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
