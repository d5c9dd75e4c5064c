package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/graph"
	"github.com/narravis/narravis/pkg/pipeline"
	"github.com/narravis/narravis/pkg/store"
)

// maxRequestBody caps layout request bodies. Documents are small; anything
// past this is a misdirected upload.
const maxRequestBody = 1 << 20

// defaultListLimit bounds GET /v1/layouts when the client doesn't ask.
const defaultListLimit = 20

// layoutRequest is the POST /v1/layout body.
type layoutRequest struct {
	Document graph.Document   `json:"document"`
	Options  pipeline.Options `json:"options"`
}

// layoutResponse is the POST /v1/layout reply.
type layoutResponse struct {
	ID         string         `json:"id"`
	Layouts    []graph.Layout `json:"layouts"`
	SceneCount int            `json:"scene_count"`
	CacheHits  int            `json:"cache_hits"`
	DurationMs float64        `json:"duration_ms"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read request body"))
		return
	}

	var req layoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode request"))
		return
	}
	// Accept a bare Document as well as the wrapped {document, options} form.
	if len(req.Document.Scenes) == 0 {
		if doc, err := graph.UnmarshalDocument(body); err == nil {
			req.Document = doc
		}
	}

	if err := req.Document.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	res, err := s.runner.LayoutDocument(r.Context(), req.Document, req.Options)
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, err := s.store.Save(r.Context(), store.Record{
		Title:     req.Document.Title,
		Document:  req.Document,
		Layouts:   res.Layouts,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeStore, err, "save layouts"))
		return
	}

	respondJSON(w, http.StatusCreated, layoutResponse{
		ID:         id,
		Layouts:    res.Layouts,
		SceneCount: res.Stats.SceneCount,
		CacheHits:  res.Stats.CacheHits,
		DurationMs: float64(res.Stats.Duration.Microseconds()) / 1000,
	})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := parsePositiveInt(q)
		if err != nil {
			respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		respondError(w, r, errors.Wrap(errors.ErrCodeStore, err, "list layouts"))
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"layouts": recs})
}

func parsePositiveInt(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.New(errors.ErrCodeInvalidInput, "not a number: %q", s)
		}
		n = n*10 + int(c-'0')
		if n > 1000 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "limit too large")
		}
	}
	if n == 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "limit must be positive")
	}
	return n, nil
}
