package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindgrove/cortex/pkg/models"
)

func TestResourceListingOrder(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	seed := []models.Resource{
		{Slug: "plain-old", Title: "A", Published: true, Created: 10},
		{Slug: "feat-old", Title: "B", Published: true, Featured: true, Created: 20},
		{Slug: "plain-new", Title: "C", Published: true, Created: 30},
		{Slug: "feat-new", Title: "D", Published: true, Featured: true, Created: 40},
		{Slug: "hidden", Title: "E", Published: false, Featured: true, Created: 50},
	}
	for i := range seed {
		_, err := repo.CreateResource(ctx, &seed[i])
		require.NoError(t, err)
	}

	list, err := repo.ListPublishedResources(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	slugs := make([]string, len(list))
	for i, r := range list {
		slugs[i] = r.Slug
	}
	assert.Equal(t, []string{"feat-new", "feat-old", "plain-new", "plain-old"}, slugs)
}

func TestResourceViewIncrement(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.CreateResource(ctx, &models.Resource{Slug: "r", Title: "R", Published: true, Created: 1})
	require.NoError(t, err)

	for want := int64(1); want <= 3; want++ {
		views, err := repo.IncrementResourceViewsBySlug(ctx, "r")
		require.NoError(t, err)
		assert.Equal(t, want, views)
	}

	_, err = repo.IncrementResourceViewsBySlug(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
