package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindgrove/cortex/pkg/models"
)

func (r *Repo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO users (email, name, role, password_hash, updated) VALUES (?, ?, ?, ?, ?)`,
		u.Email, u.Name, u.Role, u.PasswordHash, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, email, name, role, password_hash, updated FROM users WHERE email = ?`, email)

	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

func (r *Repo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res, err := r.conn.Exec(ctx, `UPDATE users SET password_hash = ?, updated = ? WHERE email = ?`, passwordHash, now(), email)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *Repo) CountUsers(ctx context.Context) (int64, error) {
	var cnt int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&cnt); err != nil {
		return 0, err
	}

	return cnt, nil
}
