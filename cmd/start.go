package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/logging"
	"github.com/ThatCatDev/junbi/internal/ollama"
	"github.com/ThatCatDev/junbi/internal/service"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the model runner in the background",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureDirs(); err != nil {
			return err
		}
		defer logging.Setup(config.LogsDir(), "start")()

		cfg := config.Load()
		ctrl := service.New(
			execx.New(),
			ollama.NewClient(cfg.Endpoint),
			config.PIDFile(),
			filepath.Join(config.LogsDir(), "serve.log"),
		)

		h, err := ctrl.Start(cmd.Context())
		if err != nil {
			return err
		}

		if h.PID > 0 {
			fmt.Printf("Model runner ready at %s (pid %d)\n", h.Endpoint, h.PID)
		} else {
			fmt.Printf("Model runner ready at %s\n", h.Endpoint)
		}
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background model runner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.Setup(config.LogsDir(), "stop")()

		cfg := config.Load()
		ctrl := service.New(
			execx.New(),
			ollama.NewClient(cfg.Endpoint),
			config.PIDFile(),
			filepath.Join(config.LogsDir(), "serve.log"),
		)

		outcome, err := ctrl.Stop(cmd.Context())
		if err != nil {
			return err
		}

		if outcome == service.OutcomeAlreadyStopped {
			fmt.Println("Model runner is not running.")
			return nil
		}
		fmt.Println("Model runner stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
}
