package apiclient

// Quote is a single stock quote as returned by the server. Only the symbol
// is guaranteed; everything else is optional and stays nil when the server
// omits it, so renderers must handle the absent case.
type Quote struct {
	Symbol        string   `json:"symbol"`
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"`
	Volume        *int64   `json:"volume"`
	UpdatedAt     *string  `json:"updated_at"`
}

// Health is the server's health report. Uptime, environment and cache size
// are only present on some deployments.
type Health struct {
	Status      string   `json:"status"`
	Timestamp   string   `json:"timestamp"`
	Uptime      *float64 `json:"uptime"`
	Environment *string  `json:"environment"`
	CacheItems  *int     `json:"cache_items"`
}

// Request describes an outbound HTTP request for the server's proxy
// endpoint. The server performs the actual call; this client never contacts
// the target URL directly.
type Request struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
	Data    any               `json:"data"`
}

// Response is the envelope the proxy endpoint wraps around the upstream
// response: the upstream status line plus the decoded body.
type Response struct {
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	Data       any    `json:"data"`
}
