package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"apifetch/internal/apiclient"
	"apifetch/internal/config"
)

// newConnectorServer stands in for the API connector server, implementing
// all three endpoints the client talks to.
func newConnectorServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","timestamp":"2024-01-01T00:00:00Z","uptime":120.5,"environment":"test","cache_items":3}`))
	})

	mux.HandleFunc("/api/stocks", func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		if symbol != "AAPL" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"symbol not found","details":"no data for ` + symbol + `"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"AAPL","price":150.25,"change":-1.5,"change_percent":-0.99,"volume":1000000,"updated_at":"2024-01-15T16:00:00Z"}`))
	})

	mux.HandleFunc("/api/fetch", func(w http.ResponseWriter, r *http.Request) {
		var req apiclient.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(apiclient.Response{Status: 200, StatusText: "OK", Data: req.Data})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestIntegration_AllOperations(t *testing.T) {
	server := newConnectorServer(t)

	t.Setenv("API_SERVER_URL", server.URL)
	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("config.Load() returned unexpected error: %v", err)
	}
	if cfg.ServerURL != server.URL {
		t.Fatalf("ServerURL = %q, want %q", cfg.ServerURL, server.URL)
	}

	client := apiclient.New(cfg.ServerURL, cfg.Timeout())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := client.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth() returned unexpected error: %v", err)
	}
	if health.Status != "ok" || health.CacheItems == nil || *health.CacheItems != 3 {
		t.Errorf("unexpected health report: %+v", health)
	}

	quote, err := client.GetStock(ctx, "aapl")
	if err != nil {
		t.Fatalf("GetStock() returned unexpected error: %v", err)
	}
	if quote.Symbol != "AAPL" || quote.Price == nil || *quote.Price != 150.25 {
		t.Errorf("unexpected quote: %+v", quote)
	}

	resp, err := client.FetchAPI(ctx, apiclient.Request{
		URL:    "https://api.example.com/items",
		Method: "post",
		Data:   map[string]any{"a": float64(1)},
	})
	if err != nil {
		t.Fatalf("FetchAPI() returned unexpected error: %v", err)
	}
	if resp.Status != 200 || resp.StatusText != "OK" {
		t.Errorf("envelope = %d %q, want 200 OK", resp.Status, resp.StatusText)
	}
	if !reflect.DeepEqual(resp.Data, map[string]any{"a": float64(1)}) {
		t.Errorf("echoed data = %v, want original structure", resp.Data)
	}
}

func TestIntegration_HTTPErrorSurfacesServerDetails(t *testing.T) {
	server := newConnectorServer(t)

	client := apiclient.New(server.URL, 5*time.Second)
	defer client.Close()

	_, err := client.GetStock(context.Background(), "ZZZZ")

	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Kind != apiclient.KindHTTP || apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("got %q status %d, want http error with 404", apiErr.Kind, apiErr.StatusCode)
	}
	if apiErr.Message != "symbol not found" {
		t.Errorf("Message = %q, want server's error field", apiErr.Message)
	}
}
