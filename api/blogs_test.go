package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/mindgrove/cortex/pkg/models"
)

func seedBlog(t *testing.T, repo interface {
	CreateBlog(ctx context.Context, b *models.Blog) (int64, error)
}, b models.Blog) int64 {
	t.Helper()
	id, err := repo.CreateBlog(context.Background(), &b)
	if err != nil {
		t.Fatalf("seed blog %s: %v", b.Slug, err)
	}
	return id
}

func TestListPublicBlogs(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	seedBlog(t, repo, models.Blog{Slug: "one", Title: "One", Published: true, Created: 100})
	seedBlog(t, repo, models.Blog{Slug: "two", Title: "Two", Published: true, Created: 200})
	seedBlog(t, repo, models.Blog{Slug: "draft", Title: "Draft", Published: false, Created: 300})

	res, err := http.Get(srv.URL + "/api/blogs")
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var blogs []models.Blog
	if err := json.NewDecoder(res.Body).Decode(&blogs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(blogs) != 2 {
		t.Fatalf("expected exactly 2 published blogs got %d", len(blogs))
	}
	for _, b := range blogs {
		if b.Slug == "draft" {
			t.Fatalf("unpublished blog leaked into public listing")
		}
	}
	if blogs[0].Created < blogs[1].Created {
		t.Fatalf("expected newest first, got %d before %d", blogs[0].Created, blogs[1].Created)
	}
}

func TestListFeaturedAndRecentCaps(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	for i := 0; i < 8; i++ {
		seedBlog(t, repo, models.Blog{
			Slug:      fmt.Sprintf("b%d", i),
			Title:     "B",
			Content:   "full text",
			Excerpt:   "short",
			Published: true,
			Featured:  true,
			Created:   int64(1000 + i),
		})
	}

	for _, path := range []string{"/api/blogs/featured", "/api/blogs/recent"} {
		res, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		var items []map[string]any
		if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		res.Body.Close()
		if len(items) != 5 {
			t.Fatalf("%s: expected cap of 5 got %d", path, len(items))
		}
	}

	// recent listing must not carry content or excerpt
	res, err := http.Get(srv.URL + "/api/blogs/recent")
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	defer res.Body.Close()
	var recent []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&recent); err != nil {
		t.Fatalf("decode recent: %v", err)
	}
	for _, item := range recent {
		if _, ok := item["content"]; ok {
			t.Fatalf("recent listing leaked content field")
		}
		if _, ok := item["excerpt"]; ok {
			t.Fatalf("recent listing leaked excerpt field")
		}
	}
}

func TestGetBlogBySlugAndID(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	id := seedBlog(t, repo, models.Blog{Slug: "hello", Title: "Hello", Published: true, Created: 10})
	seedBlog(t, repo, models.Blog{Slug: "hidden", Title: "Hidden", Published: false, Created: 20})

	for _, ref := range []string{fmt.Sprintf("%d", id), "hello"} {
		res, err := http.Get(srv.URL + "/api/blogs/" + ref)
		if err != nil {
			t.Fatalf("get blog %s: %v", ref, err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("get blog %s: expected 200 got %d", ref, res.StatusCode)
		}
		var body map[string]any
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode blog %s: %v", ref, err)
		}
		res.Body.Close()
		if body["slug"] != "hello" {
			t.Fatalf("expected slug hello got %v", body["slug"])
		}
		if _, ok := body["reviews"]; !ok {
			t.Fatalf("expected reviews array in blog response")
		}
	}

	// unpublished row must be a distinct not-found, not a generic error
	res, err := http.Get(srv.URL + "/api/blogs/hidden")
	if err != nil {
		t.Fatalf("get hidden: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unpublished blog got %d", res.StatusCode)
	}
	var errBody map[string]string
	if err := json.NewDecoder(res.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody["error"] == "" {
		t.Fatalf("expected error message in body")
	}
}

func TestBlogCounters(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	id := seedBlog(t, repo, models.Blog{Slug: "counted", Title: "Counted", Published: true, Created: 10})

	// three warm-up likes, then assert the documented 3 -> 4 transition
	for n := 0; n < 3; n++ {
		res, err := http.Post(fmt.Sprintf("%s/api/blogs/%d/like", srv.URL, id), "application/json", nil)
		if err != nil {
			t.Fatalf("like: %v", err)
		}
		res.Body.Close()
	}

	res, err := http.Post(fmt.Sprintf("%s/api/blogs/%d/like", srv.URL, id), "application/json", nil)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success true got %v", body["success"])
	}
	if int(body["likes"].(float64)) != 4 {
		t.Fatalf("expected likes 4 got %v", body["likes"])
	}

	// views by slug
	res2, err := http.Post(srv.URL+"/api/blogs/counted/view", "application/json", nil)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	defer res2.Body.Close()
	var viewBody map[string]any
	if err := json.NewDecoder(res2.Body).Decode(&viewBody); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if int(viewBody["views"].(float64)) != 1 {
		t.Fatalf("expected views 1 got %v", viewBody["views"])
	}

	// unknown target is a 404
	res3, err := http.Post(srv.URL+"/api/blogs/absent/like", "application/json", nil)
	if err != nil {
		t.Fatalf("like absent: %v", err)
	}
	defer res3.Body.Close()
	if res3.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res3.StatusCode)
	}
}

func TestAdminBlogRoutesGated(t *testing.T) {
	srv, repo, cleanup := setupServer(t)
	defer cleanup()

	seedBlog(t, repo, models.Blog{Slug: "pub", Title: "Pub", Published: true, Created: 10})
	seedBlog(t, repo, models.Blog{Slug: "draft", Title: "Draft", Published: false, Created: 20})

	// no token
	res, err := http.Get(srv.URL + "/api/admin/blogs")
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", res.StatusCode)
	}

	// with token the draft is visible
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/blogs", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("admin list with token: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res2.StatusCode)
	}
	var blogs []models.Blog
	if err := json.NewDecoder(res2.Body).Decode(&blogs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(blogs) != 2 {
		t.Fatalf("expected 2 rows in admin listing got %d", len(blogs))
	}

	// admin create
	payload := strings.NewReader(`{"slug":"made","title":"Made","published":true}`)
	req2, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/admin/blogs", payload)
	req2.Header.Set("Authorization", "Bearer "+adminToken(t))
	req2.Header.Set("Content-Type", "application/json")
	res3, err := http.DefaultClient.Do(req2)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	defer res3.Body.Close()
	if res3.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res3.StatusCode)
	}
}
