package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/mindgrove/cortex/pkg/models"
	"github.com/mindgrove/cortex/pkg/repository"
)

type ReviewsHandler struct {
	blogRepo   repository.BlogRepo
	reviewRepo repository.ReviewRepo
}

func NewReviewsHandler(br repository.BlogRepo, rr repository.ReviewRepo) *ReviewsHandler {
	return &ReviewsHandler{blogRepo: br, reviewRepo: rr}
}

type createReviewRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Comment string          `json:"comment"`
	Rating  json.RawMessage `json:"rating"`
}

// rating accepts a JSON number or a numeric string and coerces it to an
// integer. No range check: any integer, zero or negative included, is
// stored as-is.
func (req *createReviewRequest) rating() (int, bool) {
	if len(req.Rating) == 0 {
		return 0, true
	}

	var n int
	if err := json.Unmarshal(req.Rating, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(req.Rating, &s); err != nil {
		return 0, false
	}
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return 0, false
	}

	return n, true
}

// Create resolves the parent blog by id or slug, then inserts the review.
// The existence check and the insert are two independent store calls; a
// blog deleted in between leaves a dangling review (accepted race).
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	bh := &BlogsHandler{blogRepo: h.blogRepo}
	blog, ok := bh.resolveBlog(w, r)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	rating, ok := req.rating()
	if !ok {
		writeError(w, "rating must be an integer", http.StatusBadRequest)
		return
	}

	review := &models.Review{
		BlogID:  blog.ID,
		Name:    req.Name,
		Email:   req.Email,
		Comment: req.Comment,
		Rating:  rating,
	}

	id, err := h.reviewRepo.CreateReview(r.Context(), review)
	if err != nil {
		logger.Error("create review", slog.Any("err", err))
		writeError(w, "failed to create review", http.StatusInternalServerError)
		return
	}

	review.ID = id
	writeJSON(w, review, http.StatusCreated)
}
