package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/draft-cli/internal/store"
)

var rendersCmd = &cobra.Command{
	Use:   "renders",
	Short: "Inspect the render archive",
	Long:  "Commands for listing and viewing archived rendered documents.",
}

// -- renders list --

var rendersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived renders",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		limit, _ := cmd.Flags().GetInt("limit")

		renders, err := st.ListRenders(ctx, store.RenderFilter{Title: title, Limit: limit})
		if err != nil {
			return eris.Wrap(err, "renders list")
		}

		if len(renders) == 0 {
			fmt.Fprintln(os.Stderr, "No renders found.")
			return nil
		}

		formatRendersList(os.Stdout, renders)
		return nil
	},
}

// -- renders show --

var rendersShowCmd = &cobra.Command{
	Use:   "show <render-id>",
	Short: "Print an archived document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		r, err := st.GetRender(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "renders show")
		}

		fmt.Fprint(os.Stdout, r.Document)
		return nil
	},
}

func formatRendersList(w io.Writer, renders []store.Render) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tANSWERED\tVISIBLE\tCREATED")
	for _, r := range renders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			r.ID, r.Title, r.Answered, r.Visible, r.CreatedAt.Format(time.RFC3339))
	}
	tw.Flush()
}

func init() {
	rendersListCmd.Flags().String("title", "", "filter by schema title")
	rendersListCmd.Flags().Int("limit", 50, "max renders to list")
	rendersCmd.AddCommand(rendersListCmd)
	rendersCmd.AddCommand(rendersShowCmd)
	rootCmd.AddCommand(rendersCmd)
}
