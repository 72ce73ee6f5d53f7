// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vidkeep/vidkeep/internal/events"
	"github.com/vidkeep/vidkeep/internal/library"
	"github.com/vidkeep/vidkeep/internal/session"
)

// Config holds API server configuration.
type Config struct {
	SuggestThreshold float64
	PreviewInterval  time.Duration
}

// Server is the v1 API server.
type Server struct {
	library  *library.Store
	session  *session.Session
	bus      *events.Bus
	eventLog *events.EventLog
	cfg      Config
}

// New creates a new v1 API server. bus and eventLog may be nil; the event
// endpoints then report the feature as unavailable.
func New(store *library.Store, sess *session.Session, bus *events.Bus, eventLog *events.EventLog, cfg Config) *Server {
	return &Server{
		library:  store,
		session:  sess,
		bus:      bus,
		eventLog: eventLog,
		cfg:      cfg,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Videos
	mux.HandleFunc("GET /api/v1/videos", s.listVideos)
	mux.HandleFunc("GET /api/v1/videos/{id}", s.getVideo)
	mux.HandleFunc("PUT /api/v1/videos/{id}", s.updateVideo)
	mux.HandleFunc("DELETE /api/v1/videos/{id}", s.deleteVideo)
	mux.HandleFunc("PUT /api/v1/videos/{id}/rating", s.setRating)
	mux.HandleFunc("GET /api/v1/videos/{id}/similar", s.listSimilar)
	mux.HandleFunc("GET /api/v1/videos/{id}/preview", s.streamPreview)

	// Video tags
	mux.HandleFunc("POST /api/v1/videos/{id}/tags", s.addVideoTag)
	mux.HandleFunc("DELETE /api/v1/videos/{id}/tags/{name}", s.removeVideoTag)

	// Tag registry
	mux.HandleFunc("GET /api/v1/tags", s.listTags)
	mux.HandleFunc("PUT /api/v1/tags/{name}", s.renameTag)
	mux.HandleFunc("DELETE /api/v1/tags/{name}", s.deleteTag)

	// Browsing session
	mux.HandleFunc("GET /api/v1/session", s.getSession)
	mux.HandleFunc("GET /api/v1/session/videos", s.listVisible)
	mux.HandleFunc("PUT /api/v1/session/filter", s.setFilter)
	mux.HandleFunc("PUT /api/v1/session/sort", s.setSort)
	mux.HandleFunc("PUT /api/v1/session/view", s.setView)
	mux.HandleFunc("PUT /api/v1/session/selection", s.setSelection)
	mux.HandleFunc("POST /api/v1/session/navigate", s.navigate)

	// Events
	mux.HandleFunc("GET /api/v1/events", s.listEvents)
	mux.HandleFunc("GET /api/v1/events/stream", s.streamEvents)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeSessionError maps session errors to HTTP status codes.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, session.ErrDuplicateTag):
		writeError(w, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, session.ErrExternalFailure):
		writeError(w, http.StatusBadGateway, "STORE_ERROR", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
