package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/engine"
)

var (
	batchSchema     string
	batchAnswersDir string
	batchOutDir     string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render a document per answers file in a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(batchSchema)
		if err != nil {
			return err
		}

		entries, err := os.ReadDir(batchAnswersDir)
		if err != nil {
			return eris.Wrapf(err, "read answers dir %s", batchAnswersDir)
		}
		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return eris.Wrapf(err, "create out dir %s", batchOutDir)
		}

		var paths []string
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
				continue
			}
			paths = append(paths, filepath.Join(batchAnswersDir, name))
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Batch.MaxConcurrent)

		var rendered atomic.Int64
		for _, path := range paths {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := renderOne(eng, path); err != nil {
					return eris.Wrapf(err, "render %s", path)
				}
				rendered.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("batch complete",
			zap.Int64("rendered", rendered.Load()),
			zap.String("out_dir", batchOutDir),
		)
		return nil
	},
}

// renderOne renders a single answers file into the out dir, swapping the
// extension to .md. The engine is a pure function of (schema, answers), so
// sharing it across goroutines is safe.
func renderOne(eng *engine.Engine, path string) error {
	ans, err := answers.LoadFile(path, eng.Document())
	if err != nil {
		return err
	}
	text := eng.Render(ans)

	base := filepath.Base(path)
	out := filepath.Join(batchOutDir, strings.TrimSuffix(base, filepath.Ext(base))+".md")
	return eris.Wrapf(os.WriteFile(out, []byte(text), 0o644), "write %s", out)
}

func init() {
	batchCmd.Flags().StringVar(&batchSchema, "schema", "", "schema file (default from config)")
	batchCmd.Flags().StringVar(&batchAnswersDir, "answers-dir", "", "directory of answers files")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "out", "directory for rendered documents")
	_ = batchCmd.MarkFlagRequired("answers-dir")
	rootCmd.AddCommand(batchCmd)
}
