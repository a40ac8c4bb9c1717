package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/mindgrove/cortex/pkg/models"
	"github.com/mindgrove/cortex/pkg/repository"
)

type ResourcesHandler struct {
	resourceRepo repository.ResourceRepo
}

func NewResourcesHandler(rr repository.ResourceRepo) *ResourcesHandler {
	return &ResourcesHandler{resourceRepo: rr}
}

// ListPublic returns published resources, featured ones first, newest
// first within each group.
func (h *ResourcesHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceRepo.ListPublishedResources(r.Context())
	if err != nil {
		logger.Error("list resources", slog.Any("err", err))
		writeError(w, "failed to list resources", http.StatusInternalServerError)
		return
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	writeJSON(w, resources, http.StatusOK)
}

// View bumps the resource view counter by one in a single store-level
// UPDATE, identified by slug.
func (h *ResourcesHandler) View(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(mux.Vars(r)["slug"])
	if slug == "" {
		writeError(w, "resource slug is required", http.StatusBadRequest)
		return
	}

	views, err := h.resourceRepo.IncrementResourceViewsBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, "resource not found", http.StatusNotFound)
			return
		}

		logger.Error("increment resource views", slog.Any("err", err))
		writeError(w, "failed to update counter", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true, "views": views}, http.StatusOK)
}

type createResourceRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Thumbnail string `json:"thumbnail"`
	Published bool   `json:"published"`
	Featured  bool   `json:"featured"`
}

// Create inserts a resource row. Admin gated.
func (h *ResourcesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Slug = strings.TrimSpace(req.Slug)
	req.Title = strings.TrimSpace(req.Title)
	if req.Slug == "" || req.Title == "" {
		writeError(w, "slug and title are required", http.StatusBadRequest)
		return
	}

	res := &models.Resource{
		Slug:      req.Slug,
		Title:     req.Title,
		Type:      req.Type,
		Thumbnail: req.Thumbnail,
		Published: req.Published,
		Featured:  req.Featured,
	}

	id, err := h.resourceRepo.CreateResource(r.Context(), res)
	if err != nil {
		logger.Error("create resource", slog.Any("err", err))
		writeError(w, "failed to create resource", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"id": id}, http.StatusCreated)
}
