package sqlite

import (
	"context"
	"fmt"

	"github.com/mindgrove/cortex/pkg/models"
)

func (r *Repo) CreateReview(ctx context.Context, rv *models.Review) (int64, error) {
	if rv == nil {
		return 0, fmt.Errorf("review is nil")
	}
	if rv.Created == 0 {
		rv.Created = now()
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO reviews (blog_id, name, email, comment, rating, created) VALUES (?, ?, ?, ?, ?, ?)`,
		rv.BlogID, rv.Name, rv.Email, rv.Comment, rv.Rating, rv.Created)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *Repo) ListByBlog(ctx context.Context, blogID int64, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, blog_id, name, email, comment, rating, created FROM reviews WHERE blog_id = ? ORDER BY created DESC LIMIT ?`, blogID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.BlogID, &rv.Name, &rv.Email, &rv.Comment, &rv.Rating, &rv.Created); err != nil {
			return nil, err
		}

		out = append(out, rv)
	}

	return out, rows.Err()
}
