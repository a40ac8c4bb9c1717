package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/mindgrove/cortex/pkg/models"
	"github.com/mindgrove/cortex/pkg/repository"
)

type BlogsHandler struct {
	blogRepo   repository.BlogRepo
	reviewRepo repository.ReviewRepo
}

func NewBlogsHandler(br repository.BlogRepo, rr repository.ReviewRepo) *BlogsHandler {
	return &BlogsHandler{blogRepo: br, reviewRepo: rr}
}

// blogRef splits the {ref} path segment into an id or a slug. An
// all-digit segment is treated as an id.
func blogRef(r *http.Request) (int64, string) {
	ref := strings.TrimSpace(mux.Vars(r)["ref"])
	if ref == "" {
		return 0, ""
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id, ""
	}

	return 0, ref
}

func (h *BlogsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogRepo.ListPublished(r.Context())
	if err != nil {
		logger.Error("list blogs", slog.Any("err", err))
		writeError(w, "failed to list blogs", http.StatusInternalServerError)
		return
	}

	if blogs == nil {
		blogs = []models.Blog{}
	}

	writeJSON(w, blogs, http.StatusOK)
}

func (h *BlogsHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogRepo.ListFeatured(r.Context(), 5)
	if err != nil {
		logger.Error("list featured blogs", slog.Any("err", err))
		writeError(w, "failed to list blogs", http.StatusInternalServerError)
		return
	}

	if blogs == nil {
		blogs = []models.Blog{}
	}

	writeJSON(w, blogs, http.StatusOK)
}

func (h *BlogsHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogRepo.ListRecent(r.Context(), 5)
	if err != nil {
		logger.Error("list recent blogs", slog.Any("err", err))
		writeError(w, "failed to list blogs", http.StatusInternalServerError)
		return
	}

	if blogs == nil {
		blogs = []models.BlogSummary{}
	}

	writeJSON(w, blogs, http.StatusOK)
}

// ListAll returns every blog row, drafts included. Admin gated.
func (h *BlogsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogRepo.ListAll(r.Context())
	if err != nil {
		logger.Error("list all blogs", slog.Any("err", err))
		writeError(w, "failed to list blogs", http.StatusInternalServerError)
		return
	}

	if blogs == nil {
		blogs = []models.Blog{}
	}

	writeJSON(w, blogs, http.StatusOK)
}

type blogResponse struct {
	models.Blog
	Reviews []models.Review `json:"reviews"`
}

// Get resolves a single published blog by id or slug and embeds its 50
// most recent reviews. Lookups never touch the view counter; increments
// are separate explicit calls.
func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	blog, ok := h.resolveBlog(w, r)
	if !ok {
		return
	}

	reviews, err := h.reviewRepo.ListByBlog(r.Context(), blog.ID, 50)
	if err != nil {
		logger.Error("list reviews", slog.Any("err", err))
		writeError(w, "failed to load blog", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	writeJSON(w, blogResponse{Blog: *blog, Reviews: reviews}, http.StatusOK)
}

// resolveBlog looks up the published blog named by the {ref} path segment
// and writes the failure response itself when there is none.
func (h *BlogsHandler) resolveBlog(w http.ResponseWriter, r *http.Request) (*models.Blog, bool) {
	id, slug := blogRef(r)
	if id == 0 && slug == "" {
		writeError(w, "blog id or slug is required", http.StatusBadRequest)
		return nil, false
	}

	var blog *models.Blog
	var err error
	if id != 0 {
		blog, err = h.blogRepo.GetPublishedByID(r.Context(), id)
	} else {
		blog, err = h.blogRepo.GetPublishedBySlug(r.Context(), slug)
	}
	if err != nil {
		logger.Error("get blog", slog.Any("err", err))
		writeError(w, "failed to load blog", http.StatusInternalServerError)
		return nil, false
	}
	if blog == nil {
		writeError(w, "blog not found", http.StatusNotFound)
		return nil, false
	}

	return blog, true
}

// Like bumps the like counter by exactly one in a single store-level
// UPDATE. Calls are not deduplicated per client; every call counts.
func (h *BlogsHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, "likes")
}

// View bumps the view counter, same semantics as Like.
func (h *BlogsHandler) View(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, "views")
}

func (h *BlogsHandler) increment(w http.ResponseWriter, r *http.Request, counter string) {
	id, slug := blogRef(r)
	if id == 0 && slug == "" {
		writeError(w, "blog id or slug is required", http.StatusBadRequest)
		return
	}

	var value int64
	var err error
	switch {
	case counter == "likes" && id != 0:
		value, err = h.blogRepo.IncrementLikesByID(r.Context(), id)
	case counter == "likes":
		value, err = h.blogRepo.IncrementLikesBySlug(r.Context(), slug)
	case id != 0:
		value, err = h.blogRepo.IncrementViewsByID(r.Context(), id)
	default:
		value, err = h.blogRepo.IncrementViewsBySlug(r.Context(), slug)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, "blog not found", http.StatusNotFound)
			return
		}

		logger.Error("increment blog counter", slog.String("counter", counter), slog.Any("err", err))
		writeError(w, "failed to update counter", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true, counter: value}, http.StatusOK)
}

type createBlogRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Image     string `json:"image"`
	Author    string `json:"author"`
	Published bool   `json:"published"`
	Featured  bool   `json:"featured"`
}

// Create inserts a blog row. Admin gated.
func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
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

	blog := &models.Blog{
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Image:     req.Image,
		Author:    req.Author,
		Published: req.Published,
		Featured:  req.Featured,
	}

	id, err := h.blogRepo.CreateBlog(r.Context(), blog)
	if err != nil {
		logger.Error("create blog", slog.Any("err", err))
		writeError(w, "failed to create blog", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"id": id}, http.StatusCreated)
}
