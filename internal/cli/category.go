package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mithrel/boolq/internal/catalog"
	"github.com/mithrel/boolq/internal/editor"
	"github.com/mithrel/boolq/internal/match"
	"github.com/mithrel/boolq/internal/present"
)

// completionLimit caps fuzzy completion results.
const completionLimit = 20

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Browse the job title catalog",
	}
	cmd.AddCommand(newCategoryListCmd(), newCategoryShowCmd(), newCategoryCompleteCmd())
	cmd.AddCommand(newCategoryExportCmd(), newCategoryEditCmd())
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories with their title counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, nil)
			opts, err := outputOptions(app.Cfg, noHeaders, false)
			if err != nil {
				return err
			}
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderCategories(w, cat.Summaries(), opts)
			})
		},
	}
	addOutputFlags(cmd, &noHeaders)
	return cmd
}

func newCategoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <category>",
		Short:             "Show the titles of a category",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategoryNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, nil)
			opts, err := outputOptions(app.Cfg, false, false)
			if err != nil {
				return err
			}
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			titles, ok := cat.Titles(args[0])
			if !ok {
				return unknownCategoryError(cat, args[0])
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderTitles(w, args[0], titles, opts)
			})
		},
	}
	addOutputFlags(cmd, nil)
	return cmd
}

func newCategoryCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [input]",
		Short: "Get fuzzy matches for category names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			cat, err := getApp(cmd).Catalog()
			if err != nil {
				return err
			}
			for _, name := range match.CompleteNames(input, cat.Categories(), completionLimit) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// completeCategoryNames serves shell completion. Completion runs outside
// the normal PersistentPreRunE chain, so the app is built here.
func completeCategoryNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfgPath, _ := cmd.Flags().GetString("config")
	app, err := buildApp(cmd.Context(), cfgPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	cat, err := app.Catalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return match.CompleteNames(toComplete, cat.Categories(), completionLimit), cobra.ShellCompDirectiveNoFileComp
}

func unknownCategoryError(cat *catalog.Catalog, name string) error {
	if near := match.CompleteNames(name, cat.Categories(), 3); len(near) > 0 {
		return fmt.Errorf("unknown category %q (did you mean %q?)", name, near[0])
	}
	return fmt.Errorf("unknown category %q", name)
}

func newCategoryExportCmd() *cobra.Command {
	var format string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the active catalog to a file or stdout",
		Long: "Write the active catalog (built-in or catalog_path) as JSON or YAML.\n" +
			"Point catalog_path at the exported file to customize it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := getApp(cmd).Catalog()
			if err != nil {
				return err
			}
			// The format flag wins over the path extension.
			name := "catalog." + format
			if len(args) == 0 {
				return catalog.Encode(cmd.OutOrStdout(), cat, name)
			}
			out := args[0]
			if !cmd.Flags().Changed("format") {
				name = out
			}
			if fileExists(out) && !overwrite {
				return fmt.Errorf("%s already exists; use --overwrite to replace it", out)
			}
			var b bytes.Buffer
			if err := catalog.Encode(&b, cat, name); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
				return err
			}
			if err := os.WriteFile(out, b.Bytes(), 0o600); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "catalog format: json|yaml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing file")
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newCategoryEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the configured catalog in $EDITOR",
		Long: "Open catalog_path in $VISUAL/$EDITOR on a scratch copy. The result is\n" +
			"validated before it replaces the catalog file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			path := app.Cfg.GetString("catalog_path")
			if path == "" {
				return fmt.Errorf("no catalog_path configured; run 'boolq-cli category export <path>' and set catalog_path first")
			}
			initial, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			scratch, err := editor.ScratchPath(path)
			if err != nil {
				return err
			}
			defer os.Remove(scratch)

			final, changed, err := editor.OpenAt(scratch, initial)
			if err != nil {
				return err
			}
			if !changed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return nil
			}
			cat, err := catalog.Decode(bytes.NewReader(final), path)
			if err != nil {
				return fmt.Errorf("edited catalog is invalid, %s left unchanged: %w", path, err)
			}
			if err := os.WriteFile(path, final, 0o600); err != nil {
				return err
			}
			app.Log.Printf("catalog: %s rewritten with %d categories", path, cat.Len())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%d categories)\n", path, cat.Len())
			return nil
		},
	}
}
