package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mithrel/boolq/internal/config"
	"github.com/mithrel/boolq/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "boolq-cli",
		Short:         "Turn job titles into boolean search queries",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation opens the form on a terminal, help otherwise.
			if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return runForm(cmd, formFlags{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newCategoryCmd())
	cmd.AddCommand(newFormCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// buildApp loads configuration with Viper and wires the App.
func buildApp(ctx context.Context, cfgPath string) (*wire.App, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	v := viper.New()
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	}
	if err := config.Load(ctx, v); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return wire.BuildApp(ctx, v)
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
