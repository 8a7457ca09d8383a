package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/boolq/internal/match"
	"github.com/mithrel/boolq/internal/present"
)

func newSuggestCmd() *cobra.Command {
	var noHeaders bool
	var scores bool
	cmd := &cobra.Command{
		Use:   "suggest <term...>",
		Short: "Rank catalog titles against a search term",
		Long: "Score every title of the catalog against the term and print the best matches.\n" +
			"Matching ignores case and accents: exact > prefix > substring > per-word matches.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{"max": "suggest.max_results"})
			opts, err := outputOptions(app.Cfg, noHeaders, scores)
			if err != nil {
				return err
			}
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			term := strings.Join(args, " ")
			ranked := match.TopN(match.Rank(term, cat.AllTitles()), app.MaxSuggestions())
			app.Log.Printf("suggest: term=%q matches=%d", term, len(ranked))
			return present.RenderSuggestions(cmd.OutOrStdout(), ranked, opts)
		},
	}
	addOutputFlags(cmd, &noHeaders)
	cmd.Flags().IntP("max", "n", 0, "maximum number of suggestions (default from config)")
	cmd.Flags().BoolVar(&scores, "scores", false, "show relevance scores")
	return cmd
}
