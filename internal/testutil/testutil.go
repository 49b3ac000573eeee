// Package testutil provides HTTP stub servers shared by the client and
// integration tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Recorded captures one request as received by a stub server.
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// Server is an httptest server that replies with a fixed status and body
// while recording every request, so tests can assert on exactly what the
// client sent and how many round trips happened.
type Server struct {
	*httptest.Server

	mu   sync.Mutex
	hits int
	last Recorded
}

// NewJSONServer starts a stub server that answers every request with the
// given status and JSON body.
func NewJSONServer(status int, body string) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)

		s.mu.Lock()
		s.hits++
		s.last = Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   payload,
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	return s
}

// Hits returns how many requests the server has received.
func (s *Server) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits
}

// Last returns the most recently received request.
func (s *Server) Last() Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
