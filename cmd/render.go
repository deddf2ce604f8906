package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/store"
)

var (
	renderSchema  string
	renderAnswers string
	renderOut     string
	renderArchive bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the document from a schema and an answers file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		eng, err := loadEngine(renderSchema)
		if err != nil {
			return err
		}

		doc := eng.Document()
		ans := answers.Seed(doc)
		if renderAnswers != "" {
			ans, err = answers.LoadFile(renderAnswers, doc)
			if err != nil {
				return err
			}
		}

		text := eng.Render(ans)

		if renderOut != "" {
			if err := os.WriteFile(renderOut, []byte(text), 0o644); err != nil {
				return eris.Wrapf(err, "write %s", renderOut)
			}
			zap.L().Info("document written",
				zap.String("path", renderOut),
				zap.Int("bytes", len(text)),
			)
		} else {
			fmt.Fprint(os.Stdout, text)
		}

		if renderArchive {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}

			visible := 0
			for _, v := range eng.Visibility(ans) {
				if v {
					visible++
				}
			}
			rec, err := st.SaveRender(ctx, store.Render{
				Title:    doc.Title,
				Document: text,
				Answered: ans.Len(),
				Visible:  visible,
			})
			if err != nil {
				return eris.Wrap(err, "archive render")
			}
			zap.L().Info("render archived", zap.String("render_id", rec.ID))
		}

		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderSchema, "schema", "", "schema file (default from config)")
	renderCmd.Flags().StringVar(&renderAnswers, "answers", "", "answers file (default: schema defaults only)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderArchive, "archive", false, "store the rendered document in the render archive")
	rootCmd.AddCommand(renderCmd)
}
