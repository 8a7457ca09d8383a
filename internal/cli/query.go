package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/boolq/internal/clipboard"
	"github.com/mithrel/boolq/internal/present"
	"github.com/mithrel/boolq/internal/query"
	"github.com/mithrel/boolq/pkg/api"
)

func newQueryCmd() *cobra.Command {
	var modeName string
	var input string
	var category string
	var selected []string
	var custom []string
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "query [title...]",
		Short: "Build a boolean OR query from titles or a category",
		Example: `  boolq-cli query CMO --custom "VP Marketing"
  boolq-cli query --mode category --category sales --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, nil)
			opts, err := outputOptions(app.Cfg, false, false)
			if err != nil {
				return err
			}
			mode, ok := api.ParseMode(modeName)
			if !ok {
				return fmt.Errorf("invalid --mode: %s (want free|category)", modeName)
			}
			if len(args) > 0 && input == "" {
				input = strings.Join(args, " ")
			}
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			qo := api.QueryOptions{
				Mode:     mode,
				Input:    input,
				Category: category,
				Selected: selected,
				Custom:   custom,
			}
			titles := query.WorkingTitles(cat, qo)
			res := api.QueryResult{Mode: mode.String(), Titles: titles, Query: query.Format(titles)}
			if err := present.RenderQuery(cmd.OutOrStdout(), res, opts); err != nil {
				return err
			}

			if !copyOut {
				return nil
			}
			copied, err := clipboard.Copy(app.Clipboard, res.Query)
			if err != nil {
				app.Log.Printf("clipboard: %v", err)
				return err
			}
			if copied {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&modeName, "mode", "m", "free", "query mode: free|category")
	cmd.Flags().StringVarP(&input, "input", "i", "", "free-text job title")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category whose titles form the query (category mode)")
	cmd.Flags().StringArrayVarP(&selected, "select", "s", nil, "suggested title to include (repeatable)")
	cmd.Flags().StringArrayVar(&custom, "custom", nil, "additional custom title (repeatable)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the query to the clipboard")
	addOutputFlags(cmd, nil)
	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"free", "category"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategoryNames)
	return cmd
}
