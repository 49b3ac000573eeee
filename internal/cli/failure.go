package cli

import (
	"context"
	"errors"
	"fmt"

	"apifetch/internal/apiclient"
	"apifetch/internal/config"
)

// reportFailure renders a client failure and decides what the command
// should propagate. Classified failures are consumed here so the process
// still exits normally after printing the message. Cancellation and
// unclassified errors pass through to main.
func reportFailure(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	fmt.Println(renderFailure(configFromContext(ctx), apiErr))
	return nil
}

// renderFailure maps a classified failure onto its user-facing message,
// one case per failure kind.
func renderFailure(cfg *config.Config, apiErr *apiclient.APIError) string {
	switch apiErr.Kind {
	case apiclient.KindInvalidArgument:
		return errorLine(apiErr.Message)
	case apiclient.KindConnection:
		return errorLine(fmt.Sprintf("could not connect to the API server at %s. Make sure it's running.", cfg.ServerURL))
	case apiclient.KindTimeout:
		return errorLine(fmt.Sprintf("request timed out after %d seconds", cfg.TimeoutSeconds))
	case apiclient.KindHTTP:
		line := errorLine(fmt.Sprintf("API error (status %d): %s", apiErr.StatusCode, apiErr.Message))
		if apiErr.Details != "" {
			line += "\n  " + styleDim.Render("Details: "+apiErr.Details)
		}
		return line
	case apiclient.KindMalformedResponse:
		return errorLine("invalid JSON in response from server")
	default:
		return errorLine(apiErr.Error())
	}
}
