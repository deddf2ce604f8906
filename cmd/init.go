package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/schema"
)

var (
	initSchema string
	initOut    string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter answers file seeded from schema defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initSchema
		if path == "" {
			path = cfg.Schema.Path
		}

		doc, err := schema.Load(path)
		if err != nil {
			return err
		}

		seeded := answers.Seed(doc)
		if err := answers.SaveFile(initOut, seeded, doc); err != nil {
			return err
		}

		zap.L().Info("answers file written",
			zap.String("path", initOut),
			zap.Int("seeded", seeded.Len()),
		)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initSchema, "schema", "", "schema file (default from config)")
	initCmd.Flags().StringVar(&initOut, "out", "answers.yaml", "output answers file")
	rootCmd.AddCommand(initCmd)
}
