// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/pdiddy/art-explorer/internal/logging"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// Client-facing failure bodies. Upstream detail is logged, never returned.
const (
	msgDepartments = "Error fetching departments"
	msgSearch      = "Error fetching object IDs"
	msgObject      = "Error fetching or translating object data"
)

// Collection is the passthrough half of the upstream API.
type Collection interface {
	Departments(ctx context.Context) (json.RawMessage, error)
	Search(ctx context.Context, f types.Filters) (json.RawMessage, error)
}

// Enricher produces translated object records.
type Enricher interface {
	Enrich(ctx context.Context, id string) (types.ObjectRecord, error)
}

// Handler serves the proxy endpoints.
type Handler struct {
	collection Collection
	enricher   Enricher
	logger     *slog.Logger
}

// NewHandler wires the proxy endpoints to their dependencies.
func NewHandler(c Collection, e Enricher, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{collection: c, enricher: e, logger: logger}
}

// Departments handles GET /departments.
func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	departments, err := h.collection.Departments(r.Context())
	if err != nil {
		logger.Error("fetching departments", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, msgDepartments)
		return
	}
	RespondWithRaw(w, http.StatusOK, departments)
}

// Search handles GET /search?keyword=&department=&location=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	query := r.URL.Query()

	filters := types.Filters{
		Department: query.Get("department"),
		Keyword:    query.Get("keyword"),
		Location:   query.Get("location"),
	}

	body, err := h.collection.Search(r.Context(), filters)
	if err != nil {
		logger.Error("searching collection", "error", err, "keyword", filters.KeywordOrDefault())
		WriteJSONError(w, http.StatusInternalServerError, msgSearch)
		return
	}
	RespondWithRaw(w, http.StatusOK, body)
}

// Object handles GET /object/{id}.
func (h *Handler) Object(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	id := chi.URLParam(r, "id")

	record, err := h.enricher.Enrich(r.Context(), id)
	if err != nil {
		logger.Error("enriching object", "error", err, "object_id", id)
		WriteJSONError(w, http.StatusInternalServerError, msgObject)
		return
	}
	RespondWithJSON(w, http.StatusOK, record)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
