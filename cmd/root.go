package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/draft-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "draft-cli",
	Short: "Questionnaire-driven document renderer",
	Long:  "Renders long-form documents (contracts, reports, letters) from a declarative questionnaire: each answer contributes a text fragment, with cross-references, conditional questions, and inherited defaults resolved at render time.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
