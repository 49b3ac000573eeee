package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"apifetch/internal/apiclient"
	"apifetch/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{ServerURL: "http://localhost:9999", TimeoutSeconds: 7}
}

func TestRenderFailure_PerKind(t *testing.T) {
	tests := []struct {
		name string
		err  *apiclient.APIError
		want []string
	}{
		{
			name: "invalid argument",
			err:  apiclient.NewInvalidArgumentError("stock symbol must be a non-empty string"),
			want: []string{"Error:", "stock symbol must be a non-empty string"},
		},
		{
			name: "connection",
			err:  apiclient.NewConnectionError(errors.New("dial tcp: connection refused")),
			want: []string{"could not connect to the API server at http://localhost:9999", "Make sure it's running."},
		},
		{
			name: "timeout",
			err:  apiclient.NewTimeoutError(context.DeadlineExceeded),
			want: []string{"request timed out after 7 seconds"},
		},
		{
			name: "http",
			err:  &apiclient.APIError{Kind: apiclient.KindHTTP, StatusCode: 503, Message: "upstream unavailable"},
			want: []string{"API error (status 503): upstream unavailable"},
		},
		{
			name: "http with details",
			err:  &apiclient.APIError{Kind: apiclient.KindHTTP, StatusCode: 404, Message: "symbol not found", Details: "no data for symbol ZZZZ"},
			want: []string{"API error (status 404): symbol not found", "Details: no data for symbol ZZZZ"},
		},
		{
			name: "malformed response",
			err:  apiclient.NewMalformedResponseError(errors.New("unexpected end of JSON input")),
			want: []string{"invalid JSON in response from server"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderFailure(testConfig(), tt.err)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("renderFailure() = %q, missing %q", out, want)
				}
			}
		})
	}
}

func TestReportFailure_ConsumesClassifiedFailures(t *testing.T) {
	ctx := withConfig(context.Background(), testConfig())

	failures := []*apiclient.APIError{
		apiclient.NewInvalidArgumentError("bad input"),
		apiclient.NewConnectionError(errors.New("refused")),
		apiclient.NewTimeoutError(context.DeadlineExceeded),
		{Kind: apiclient.KindHTTP, StatusCode: 500, Message: "server returned an error"},
		apiclient.NewMalformedResponseError(errors.New("bad json")),
	}

	for _, apiErr := range failures {
		t.Run(string(apiErr.Kind), func(t *testing.T) {
			if got := reportFailure(ctx, apiErr); got != nil {
				t.Errorf("reportFailure() = %v, want nil so the process exits normally", got)
			}
		})
	}
}

func TestReportFailure_CancellationPassesThrough(t *testing.T) {
	ctx := withConfig(context.Background(), testConfig())
	err := fmt.Errorf("request failed: %w", context.Canceled)

	got := reportFailure(ctx, err)
	if !errors.Is(got, context.Canceled) {
		t.Errorf("reportFailure() = %v, want cancellation passed through", got)
	}
}

func TestReportFailure_UnclassifiedPassesThrough(t *testing.T) {
	ctx := withConfig(context.Background(), testConfig())
	err := errors.New("something unexpected")

	if got := reportFailure(ctx, err); got != err {
		t.Errorf("reportFailure() = %v, want the original error", got)
	}
}
