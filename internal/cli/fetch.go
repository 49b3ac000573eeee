package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"apifetch/internal/apiclient"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	method  string   // HTTP method the proxy should use
	headers []string // raw 'key:value' header tokens
	data    string   // JSON body string
}

// newFetchCmd creates the generic fetch command. The request is not sent
// to the target URL directly; it is posted as a descriptor to the server's
// proxy endpoint, which performs the actual call.
func newFetchCmd() *cobra.Command {
	opts := fetchOpts{method: "GET"}

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch data from any API through the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", opts.method, "HTTP method (default: GET)")
	cmd.Flags().StringArrayVarP(&opts.headers, "header", "H", nil, "HTTP header in 'key:value' format (repeatable)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "JSON data for POST/PUT requests")

	return cmd
}

func runFetch(ctx context.Context, url string, opts fetchOpts) error {
	headers, err := parseHeaders(opts.headers)
	if err != nil {
		return reportFailure(ctx, err)
	}

	var data any
	if opts.data != "" {
		if err := json.Unmarshal([]byte(opts.data), &data); err != nil {
			return reportFailure(ctx, apiclient.NewInvalidArgumentError("invalid JSON format in data argument"))
		}
	}

	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	client := apiclient.New(cfg.ServerURL, cfg.Timeout())
	defer client.Close()

	logger.Debug("proxying request", "url", url, "method", opts.method, "server", cfg.ServerURL)

	start := time.Now()
	resp, err := client.FetchAPI(ctx, apiclient.Request{
		URL:     url,
		Method:  opts.method,
		Headers: headers,
		Data:    data,
	})
	elapsed := time.Since(start)
	if err != nil {
		return reportFailure(ctx, err)
	}

	fmt.Print(renderFetchResponse(resp))
	fmt.Println(renderElapsed(elapsed))
	return nil
}

// parseHeaders splits each 'key:value' token on the first colon, trimming
// whitespace on both sides. A token without a colon is an invalid-argument
// failure rather than a crash.
func parseHeaders(tokens []string) (map[string]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	headers := make(map[string]string, len(tokens))
	for _, token := range tokens {
		key, value, found := strings.Cut(token, ":")
		if !found {
			return nil, apiclient.NewInvalidArgumentError(fmt.Sprintf("header %q must be in 'key:value' format", token))
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}
