package sqlite

import (
	"context"
	"fmt"

	"github.com/mindgrove/cortex/pkg/models"
)

func (r *Repo) CreateResource(ctx context.Context, res *models.Resource) (int64, error) {
	if res == nil {
		return 0, fmt.Errorf("resource is nil")
	}
	if res.Created == 0 {
		res.Created = now()
	}

	out, err := r.conn.Exec(ctx,
		`INSERT INTO resources (slug, title, type, thumbnail, published, featured, views, created) VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		res.Slug, res.Title, res.Type, res.Thumbnail, res.Published, res.Featured, res.Created)
	if err != nil {
		return 0, err
	}

	return out.LastInsertId()
}

// ListPublishedResources returns published resources with featured rows
// first, newest first within each group.
func (r *Repo) ListPublishedResources(ctx context.Context) ([]models.Resource, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, slug, title, type, thumbnail, published, featured, views, created FROM resources WHERE published = 1 ORDER BY featured DESC, created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(&res.ID, &res.Slug, &res.Title, &res.Type, &res.Thumbnail, &res.Published, &res.Featured, &res.Views, &res.Created); err != nil {
			return nil, err
		}

		out = append(out, res)
	}

	return out, rows.Err()
}

func (r *Repo) IncrementResourceViewsBySlug(ctx context.Context, slug string) (int64, error) {
	var views int64
	if err := r.conn.QueryRow(ctx, `UPDATE resources SET views = views + 1 WHERE slug = ? RETURNING views`, slug).Scan(&views); err != nil {
		return 0, err
	}

	return views, nil
}
