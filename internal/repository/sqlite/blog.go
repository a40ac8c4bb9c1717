package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindgrove/cortex/pkg/models"
)

const blogColumns = `id, slug, title, content, excerpt, image, author, published, featured, likes, views, created`

func (r *Repo) CreateBlog(ctx context.Context, b *models.Blog) (int64, error) {
	if b == nil {
		return 0, fmt.Errorf("blog is nil")
	}
	if b.Created == 0 {
		b.Created = now()
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO blogs (slug, title, content, excerpt, image, author, published, featured, likes, views, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?)`,
		b.Slug, b.Title, b.Content, b.Excerpt, b.Image, b.Author, b.Published, b.Featured, b.Created)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *Repo) GetPublishedByID(ctx context.Context, id int64) (*models.Blog, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = ? AND published = 1`, id)
	return scanBlog(row)
}

func (r *Repo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE slug = ? AND published = 1`, slug)
	return scanBlog(row)
}

func scanBlog(row *sql.Row) (*models.Blog, error) {
	var b models.Blog
	if err := row.Scan(&b.ID, &b.Slug, &b.Title, &b.Content, &b.Excerpt, &b.Image, &b.Author, &b.Published, &b.Featured, &b.Likes, &b.Views, &b.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &b, nil
}

func (r *Repo) ListPublished(ctx context.Context) ([]models.Blog, error) {
	return r.listBlogs(ctx, `SELECT `+blogColumns+` FROM blogs WHERE published = 1 ORDER BY created DESC`)
}

func (r *Repo) ListFeatured(ctx context.Context, limit int) ([]models.Blog, error) {
	if limit <= 0 {
		limit = 5
	}
	return r.listBlogs(ctx, `SELECT `+blogColumns+` FROM blogs WHERE published = 1 AND featured = 1 ORDER BY created DESC LIMIT ?`, limit)
}

func (r *Repo) ListAll(ctx context.Context) ([]models.Blog, error) {
	return r.listBlogs(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY created DESC`)
}

func (r *Repo) listBlogs(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Blog
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(&b.ID, &b.Slug, &b.Title, &b.Content, &b.Excerpt, &b.Image, &b.Author, &b.Published, &b.Featured, &b.Likes, &b.Views, &b.Created); err != nil {
			return nil, err
		}

		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *Repo) ListRecent(ctx context.Context, limit int) ([]models.BlogSummary, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, slug, title, image, author, featured, likes, views, created FROM blogs WHERE published = 1 ORDER BY created DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BlogSummary
	for rows.Next() {
		var b models.BlogSummary
		if err := rows.Scan(&b.ID, &b.Slug, &b.Title, &b.Image, &b.Author, &b.Featured, &b.Likes, &b.Views, &b.Created); err != nil {
			return nil, err
		}

		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *Repo) IncrementLikesByID(ctx context.Context, id int64) (int64, error) {
	return r.incrementBlogCounter(ctx, "likes", "id", id)
}

func (r *Repo) IncrementLikesBySlug(ctx context.Context, slug string) (int64, error) {
	return r.incrementBlogCounter(ctx, "likes", "slug", slug)
}

func (r *Repo) IncrementViewsByID(ctx context.Context, id int64) (int64, error) {
	return r.incrementBlogCounter(ctx, "views", "id", id)
}

func (r *Repo) IncrementViewsBySlug(ctx context.Context, slug string) (int64, error) {
	return r.incrementBlogCounter(ctx, "views", "slug", slug)
}

// incrementBlogCounter bumps a counter column in a single UPDATE so
// concurrent requests never lose updates. Returns sql.ErrNoRows when the
// target row does not exist. column and key are fixed by the callers above,
// never caller input.
func (r *Repo) incrementBlogCounter(ctx context.Context, column, key string, arg any) (int64, error) {
	query := fmt.Sprintf(`UPDATE blogs SET %s = %s + 1 WHERE %s = ? RETURNING %s`, column, column, key, column)

	var value int64
	if err := r.conn.QueryRow(ctx, query, arg).Scan(&value); err != nil {
		return 0, err
	}

	return value, nil
}
