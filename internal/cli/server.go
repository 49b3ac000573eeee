package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"apifetch/internal/apiclient"
)

// newServerCmd creates the health check command.
func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	client := apiclient.New(cfg.ServerURL, cfg.Timeout())
	defer client.Close()

	logger.Debug("checking server health", "server", cfg.ServerURL)

	health, err := client.CheckHealth(ctx)
	if err != nil {
		return reportFailure(ctx, err)
	}

	fmt.Print(renderHealth(health))
	return nil
}
