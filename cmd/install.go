package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/install"
	"github.com/ThatCatDev/junbi/internal/logging"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Ollama model runner",
	Long: `Install the Ollama model runner via the platform's package manager.

Idempotent: if the binary is already on PATH nothing is installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.Setup(config.LogsDir(), "install")()

		ins := install.New(execx.New())
		outcome, err := ins.Run(cmd.Context())
		if err != nil {
			return err
		}

		if outcome == install.OutcomeAlreadyInstalled {
			v, _ := ins.Version(cmd.Context())
			fmt.Printf("Ollama already installed (%s)\n", v)
			return nil
		}
		fmt.Println("Ollama installed. Next: 'junbi start' then 'junbi pull'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
