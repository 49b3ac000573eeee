package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"apifetch/internal/apiclient"
)

// newStockCmd creates the stock lookup command.
func newStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock SYMBOL",
		Short: "Get stock data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStock(cmd.Context(), args[0])
		},
	}
}

func runStock(ctx context.Context, symbol string) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	client := apiclient.New(cfg.ServerURL, cfg.Timeout())
	defer client.Close()

	logger.Debug("requesting stock quote", "symbol", symbol, "server", cfg.ServerURL)

	start := time.Now()
	quote, err := client.GetStock(ctx, symbol)
	elapsed := time.Since(start)
	if err != nil {
		return reportFailure(ctx, err)
	}

	fmt.Print(renderQuote(quote))
	fmt.Println(renderElapsed(elapsed))
	return nil
}
