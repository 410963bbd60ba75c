package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/ollama"
	"github.com/ThatCatDev/junbi/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect the installed skill pack",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := skills.NewStore(config.SkillsDir()).List()
		if len(list) == 0 {
			fmt.Println("No skills installed. Run 'junbi init'.")
			return nil
		}
		for _, sk := range list {
			fmt.Printf("  %-22s %s\n", sk.Name, sk.Title)
		}
		return nil
	},
}

var skillsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search installed skills",
	Long: `Search installed skills by meaning.

Uses embedding-based retrieval through the running model runner; falls back
to keyword matching when the runner is down.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		limit, _ := cmd.Flags().GetInt("limit")
		embedModel, _ := cmd.Flags().GetString("embedding-model")

		cfg := config.Load()
		store := skills.NewStore(config.SkillsDir())
		list := store.List()
		if len(list) == 0 {
			fmt.Println("No skills installed. Run 'junbi init'.")
			return nil
		}

		client := ollama.NewClient(cfg.Endpoint)
		if client.Check(cmd.Context()) != ollama.StatusReady {
			fmt.Println("Model runner not reachable, falling back to keyword search.")
			for _, sk := range store.KeywordSearch(query, limit) {
				fmt.Printf("  %-22s %s\n", sk.Name, sk.Title)
			}
			return nil
		}

		ix, err := skills.NewIndex(config.SkillIndexDir(), skills.NewOllamaEmbedFunc(client, embedModel))
		if err != nil {
			return err
		}
		if err := ix.Build(cmd.Context(), list); err != nil {
			return err
		}

		results, err := ix.Search(cmd.Context(), query, limit)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("  %-22s score=%.3f  %s\n", r.Skill.Name, r.CombinedScore, r.Skill.Title)
		}
		return nil
	},
}

func init() {
	skillsSearchCmd.Flags().Int("limit", 5, "maximum number of results")
	skillsSearchCmd.Flags().String("embedding-model", "nomic-embed-text", "embedding model for semantic search")
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsSearchCmd)
	rootCmd.AddCommand(skillsCmd)
}
