package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/boolq/internal/present/tui"
	"github.com/mithrel/boolq/internal/session"
	"github.com/mithrel/boolq/pkg/api"
)

type formFlags struct {
	mode     string
	input    string
	category string
}

func newFormCmd() *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Open the interactive query form",
		Long: "Type a title to get suggestions, toggle them into the query, or switch to\n" +
			"category mode and pick a whole category. The final query is printed on exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "free", "initial mode: free|category")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "initial free-text title")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "initially selected category")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategoryNames)
	return cmd
}

func runForm(cmd *cobra.Command, f formFlags) error {
	app := getApp(cmd)
	mode, ok := api.ParseMode(f.mode)
	if !ok {
		return fmt.Errorf("invalid --mode: %s (want free|category)", f.mode)
	}
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	form := session.NewForm(cat, app.MaxSuggestions())
	form.Mode = mode
	form.Input = f.input
	if f.category != "" {
		if _, ok := cat.Titles(f.category); !ok {
			return unknownCategoryError(cat, f.category)
		}
		form.SelectCategory(f.category)
	}

	ttl := time.Duration(app.Cfg.GetInt("tui.status_seconds")) * time.Second
	return tui.RunForm(cmd.Context(), cmd.OutOrStdout(), form, tui.Options{
		Clipboard: app.Clipboard,
		StatusTTL: ttl,
		Log:       app.Log,
	})
}
