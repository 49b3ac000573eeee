// Package apiclient implements the HTTP client for the API connector
// server. It exposes the three operations the CLI dispatches to — health
// check, stock lookup, and proxied fetch — and classifies every failure
// into an APIError so callers can handle each kind exhaustively.
package apiclient

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"resty.dev/v3"
)

// Client issues requests against a single API connector server. The
// underlying session is reused across calls for connection efficiency but
// each operation performs exactly one round trip; nothing is retried.
type Client struct {
	http *resty.Client
}

// New creates a client bound to baseURL. Every request fails with a
// timeout error if no response arrives within timeout.
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{http: client}
}

// Close releases the underlying session.
func (c *Client) Close() error {
	return c.http.Close()
}

// CheckHealth reports whether the server is running properly.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/health")

	if err != nil {
		return nil, Classify(err)
	}

	var health Health
	if err := decode(resp, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetStock retrieves the quote for symbol. The symbol is uppercased before
// transmission; an empty or blank symbol fails without any network call.
func (c *Client) GetStock(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, NewInvalidArgumentError("stock symbol must be a non-empty string")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("symbol", strings.ToUpper(symbol)).
		Get("/api/stocks")

	if err != nil {
		return nil, Classify(err)
	}

	var quote Quote
	if err := decode(resp, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// FetchAPI asks the server's proxy endpoint to perform the request
// described by req and returns the wrapped upstream response. The method
// defaults to GET and is uppercased; nil headers and data are sent as
// empty objects to match the endpoint's payload shape.
func (c *Client) FetchAPI(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, NewInvalidArgumentError("fetch URL must be a non-empty string")
	}

	req.Method = strings.ToUpper(strings.TrimSpace(req.Method))
	if req.Method == "" {
		req.Method = "GET"
	}
	if req.Headers == nil {
		req.Headers = map[string]string{}
	}
	if req.Data == nil {
		req.Data = map[string]any{}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/fetch")

	if err != nil {
		return nil, Classify(err)
	}

	var envelope Response
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// decode gates on the response status and unmarshals the body into out.
func decode(resp *resty.Response, out any) error {
	if !resp.IsSuccess() {
		return NewHTTPError(resp.StatusCode(), resp.Bytes())
	}
	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return NewMalformedResponseError(err)
	}
	return nil
}
