// Package cli implements the apifetch command-line interface.
//
// The CLI maps three commands onto the API client: "stock" looks up a
// quote, "server" checks the connector server's health, and "fetch" asks
// the server's proxy endpoint to perform an arbitrary HTTP request. Each
// invocation is a single linear sequence: parse, dispatch, call, render.
//
// Client failures never escape as process errors: every classified failure
// is rendered as a human-readable line and the process exits normally.
// Only usage errors and user cancellation produce non-zero exits.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"apifetch/internal/config"
)

// Execute runs the apifetch CLI and returns an error if any command fails.
//
// Configuration is resolved once in the root pre-run (flags over the
// API_SERVER_URL environment variable over defaults) and attached to the
// command context together with the logger, so subcommands never touch
// globals.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands registered.
// Errors are silenced on the command itself: classified failures are
// printed by reportFailure, and everything that propagates out (usage
// errors, cancellation) is printed by main.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "apifetch",
		Short:         "apifetch talks to an API connector server",
		Long:          `apifetch is a command-line client for an API connector server. It looks up stock quotes, checks server health, and proxies arbitrary HTTP requests through the server, formatting every JSON response for the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}

			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmdCtx = withConfig(cmdCtx, cfg)
			cmd.SetContext(cmdCtx)
			return nil
		},
	}

	root.PersistentFlags().String("server", "", "API server URL (default "+config.DefaultServerURL+", or API_SERVER_URL)")
	root.PersistentFlags().Int("timeout", config.DefaultTimeoutSeconds, "request timeout in seconds")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newStockCmd())
	root.AddCommand(newServerCmd())
	root.AddCommand(newFetchCmd())

	return root
}
