// Package httpapi exposes the decode pipeline over HTTP: POST /v1/decode
// accepts a raw ADF container body and returns the assembled Document as
// JSON; GET /healthz reports liveness. Every request is tagged with a
// correlation ID (either the caller's X-Request-ID or a freshly minted
// UUID) that appears in both the response header and the request log line.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/avnlabs/gsgraph/pkg/archive"
	"github.com/avnlabs/gsgraph/pkg/cache"
	"github.com/avnlabs/gsgraph/pkg/gserrors"
	"github.com/avnlabs/gsgraph/pkg/gsdoc"
	"github.com/avnlabs/gsgraph/pkg/observability"
)

// maxBodyBytes bounds a single decode request's upload size.
const maxBodyBytes = 64 << 20

// Server holds the dependencies every route needs.
type Server struct {
	Logger *log.Logger
	Cache  cache.Cache
	Keyer  cache.Keyer
	Sink   *archive.Sink // nil disables archiving
	TTL    time.Duration
}

// Router builds the chi router for this server's routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequest)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/v1/decode", s.handleDecode)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	contentHash := cache.Hash(body)
	var cacheKey string
	if s.Cache != nil && s.Keyer != nil {
		cacheKey = s.Keyer.DocumentKey(contentHash, cache.DocumentKeyOpts{})
		if cached, hit, err := s.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "document")
			writeJSON(w, http.StatusOK, json.RawMessage(cached))
			return
		}
		observability.Cache().OnCacheMiss(ctx, "document")
	}

	observability.Pipeline().OnParseStart(ctx, "adf", contentHash)
	start := time.Now()
	doc, err := gsdoc.DecodeContainer(body)
	observability.Pipeline().OnParseComplete(ctx, "adf", contentHash, len(doc.Nodes), time.Since(start), err)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode response: "+err.Error())
		return
	}

	if s.Cache != nil && cacheKey != "" {
		if err := s.Cache.Set(ctx, cacheKey, encoded, s.TTL); err != nil {
			s.Logger.Warn("cache set failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "document", len(encoded))
		}
	}

	if s.Sink != nil {
		run := archive.Run{
			ContentHash: contentHash,
			DecodedAt:   time.Now(),
			NodeCount:   len(doc.Nodes),
			EdgeCount:   len(doc.Edges),
			Document:    doc,
		}
		if err := s.Sink.Archive(ctx, run); err != nil {
			s.Logger.Warn("archive failed", "err", err)
		}
	}

	writeJSON(w, http.StatusOK, json.RawMessage(encoded))
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var gsErr *gserrors.Error
	if e, ok := err.(*gserrors.Error); ok {
		gsErr = e
	}
	if gsErr == nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusBadRequest
	if gsErr.Code == gserrors.CodeNoInstance {
		status = http.StatusUnprocessableEntity
	}
	writeError(w, status, gsErr.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", w.Header().Get("X-Request-ID"),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
