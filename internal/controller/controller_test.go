package controller_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/PrateekLewis/blog-application/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStore() *session.Store {
	return session.NewStore(session.NewMemoryBackend(), testLogger())
}

// backendRecorder is an httptest server that records every request as
// "METHOD path" in order.
type backendRecorder struct {
	*httptest.Server

	mu    sync.Mutex
	calls []string
}

func newBackend(mux *http.ServeMux) *backendRecorder {
	rec := &backendRecorder{}
	rec.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.calls = append(rec.calls, r.Method+" "+r.URL.Path)
		rec.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	return rec
}

func (r *backendRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// scriptedConfirmer answers every prompt with a fixed verdict and remembers
// the messages it was asked.
type scriptedConfirmer struct {
	granted  bool
	messages []string
}

func (c *scriptedConfirmer) Confirm(message string) bool {
	c.messages = append(c.messages, message)
	return c.granted
}
