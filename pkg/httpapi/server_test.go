package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/avnlabs/gsgraph/pkg/cache"
)

func testServer() *Server {
	return &Server{
		Logger: log.New(io.Discard),
		Cache:  cache.NewNullCache(),
		Keyer:  cache.NewDefaultKeyer(),
	}
}

func TestHealthz(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestDecodeBadMagicReturns400(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/decode", bytes.NewReader([]byte{0, 0, 0, 0}))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestDecodeSetsRequestIDHeader(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/decode", bytes.NewReader([]byte{0, 0, 0, 0}))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID to be set")
	}
}

func TestDecodeTruncatedBodyReturns400(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/decode", bytes.NewReader([]byte{1, 2, 3}))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for too-short buffer, body: %s", w.Code, w.Body.String())
	}
}
