package openai

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// capturedRequest is what a stub server saw for one request
type capturedRequest struct {
	Method      string
	Path        string
	Auth        string
	ContentType string
	Body        []byte
}

// stubServer answers every request with a fixed status and body and records
// what it received
type stubServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newStubServer(t *testing.T, status int, body string) *stubServer {
	t.Helper()
	return newStubServerFunc(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func newStubServerFunc(t *testing.T, handler http.HandlerFunc) *stubServer {
	t.Helper()
	s := &stubServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, capturedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Auth:        r.Header.Get("Authorization"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		s.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) Requests() []capturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]capturedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *stubServer) Hits() int {
	return len(s.Requests())
}

// newTestClient returns an initialized client pointed at srv
func newTestClient(t *testing.T, srv *stubServer, opts ...Option) *Client {
	t.Helper()
	c := New(append([]Option{WithBaseURL(srv.URL + "/v1")}, opts...)...)
	c.Init("sk-test")
	return c
}
