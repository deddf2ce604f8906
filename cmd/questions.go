package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/engine"
)

var (
	questionsSchema  string
	questionsAnswers string
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List questions with type, group, and current visibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(questionsSchema)
		if err != nil {
			return err
		}

		ans := answers.Seed(eng.Document())
		if questionsAnswers != "" {
			ans, err = answers.LoadFile(questionsAnswers, eng.Document())
			if err != nil {
				return err
			}
		}

		formatQuestions(os.Stdout, eng, ans)
		return nil
	},
}

func formatQuestions(w io.Writer, eng *engine.Engine, ans *answers.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tGROUP\tVISIBLE\tVALUE")
	vis := eng.Visibility(ans)
	for _, q := range eng.Questions() {
		value := eng.EffectiveValue(q.ID, ans)
		if len(value) > 40 {
			value = value[:37] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%s\n",
			q.ID, q.Type, eng.GroupPath(q.ID), vis[q.ID], value)
	}
	tw.Flush()
}

func init() {
	questionsCmd.Flags().StringVar(&questionsSchema, "schema", "", "schema file (default from config)")
	questionsCmd.Flags().StringVar(&questionsAnswers, "answers", "", "answers file to evaluate visibility against")
	rootCmd.AddCommand(questionsCmd)
}
