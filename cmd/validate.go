package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/draft-cli/internal/schema"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a schema for dangling references and default_from cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := validateSchema
		if path == "" {
			path = cfg.Schema.Path
		}

		doc, err := schema.Load(path)
		if err != nil {
			return err
		}

		warnings, err := schema.Validate(doc)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		if err != nil {
			// Cycles are fatal: the chain has no resolvable value.
			return err
		}

		fmt.Fprintf(os.Stdout, "%s: ok (%d warnings)\n", path, len(warnings))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "schema file (default from config)")
	rootCmd.AddCommand(validateCmd)
}
