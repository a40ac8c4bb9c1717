package sqlite_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindgrove/cortex/pkg/models"
)

func TestBlogVisibility(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.CreateBlog(ctx, nil)
	require.Error(t, err)

	pubID, err := repo.CreateBlog(ctx, &models.Blog{Slug: "pub", Title: "Pub", Published: true, Created: 100})
	require.NoError(t, err)
	draftID, err := repo.CreateBlog(ctx, &models.Blog{Slug: "draft", Title: "Draft", Published: false, Created: 200})
	require.NoError(t, err)

	got, err := repo.GetPublishedByID(ctx, pubID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pub", got.Slug)

	got, err = repo.GetPublishedByID(ctx, draftID)
	require.NoError(t, err)
	assert.Nil(t, got, "drafts must not resolve through the published lookup")

	got, err = repo.GetPublishedBySlug(ctx, "draft")
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pub", list[0].Slug)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogListingsOrderAndCaps(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := repo.CreateBlog(ctx, &models.Blog{
			Slug:      string(rune('a' + i)),
			Title:     "T",
			Content:   "body",
			Excerpt:   "cut",
			Published: true,
			Featured:  i%2 == 0,
			Created:   int64(100 + i),
		})
		require.NoError(t, err)
	}

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 7)
	for i := 1; i < len(published); i++ {
		assert.GreaterOrEqual(t, published[i-1].Created, published[i].Created)
	}

	featured, err := repo.ListFeatured(ctx, 5)
	require.NoError(t, err)
	require.Len(t, featured, 4)
	for _, b := range featured {
		assert.True(t, b.Featured)
	}

	recent, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, int64(106), recent[0].Created)
}

func TestBlogCounterIncrements(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repo.CreateBlog(ctx, &models.Blog{Slug: "count", Title: "Count", Published: true, Created: 1})
	require.NoError(t, err)

	likes, err := repo.IncrementLikesByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	likes, err = repo.IncrementLikesBySlug(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)

	views, err := repo.IncrementViewsBySlug(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	_, err = repo.IncrementLikesByID(ctx, 424242)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repo.IncrementViewsBySlug(ctx, "absent")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// Increments must happen inside the store, not as read-modify-write in the
// caller, so N concurrent bumps always land as +N.
func TestBlogCounterConcurrentIncrements(t *testing.T) {
	repo, cleanup := setupFileRepo(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repo.CreateBlog(ctx, &models.Blog{Slug: "hot", Title: "Hot", Published: true, Created: 1})
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementLikesByID(ctx, id); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent increment: %v", err)
	}

	blog, err := repo.GetPublishedByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, blog)
	assert.Equal(t, int64(n), blog.Likes)
}
