package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/boolq/internal/present"
)

// applyConfigFlagOverrides copies changed flags into v. Flags named like a
// config key override it directly; extra maps other flag names to keys.
func applyConfigFlagOverrides(cmd *cobra.Command, v *viper.Viper, extra map[string]string) {
	for _, key := range v.AllKeys() {
		flag := cmd.Flags().Lookup(key)
		if flag == nil || !flag.Changed {
			continue
		}
		setFromFlag(cmd, v, key, key)
	}
	for flagName, key := range extra {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		setFromFlag(cmd, v, flagName, key)
	}
}

func setFromFlag(cmd *cobra.Command, v *viper.Viper, flagName, key string) {
	switch cmd.Flags().Lookup(flagName).Value.Type() {
	case "bool":
		if val, err := cmd.Flags().GetBool(flagName); err == nil {
			v.Set(key, val)
		}
	case "int":
		if val, err := cmd.Flags().GetInt(flagName); err == nil {
			v.Set(key, val)
		}
	default:
		if val, err := cmd.Flags().GetString(flagName); err == nil {
			v.Set(key, val)
		}
	}
}

// outputOptions resolves the output flags (already merged into config)
// into presenter options.
func outputOptions(v *viper.Viper, noHeaders, scores bool) (present.Options, error) {
	name := strings.ToLower(strings.TrimSpace(v.GetString("output")))
	mode, ok := present.ParseMode(name)
	if !ok {
		return present.Options{}, fmt.Errorf("invalid --output: %s (want %s)", name, strings.Join(present.ModeNames(), "|"))
	}
	return present.Options{
		Mode:       mode,
		JSONIndent: false, // pretty-print via external tools like jq
		Headers:    !noHeaders,
		Scores:     scores,
	}, nil
}

func addOutputFlags(cmd *cobra.Command, noHeaders *bool) {
	cmd.Flags().String("output", "", "output mode: plain|pretty|json|ndjson (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return present.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	if noHeaders != nil {
		cmd.Flags().BoolVar(noHeaders, "noheaders", false, "hide column headers (plain)")
	}
}
