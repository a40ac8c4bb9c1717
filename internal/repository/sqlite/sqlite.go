package sqlite

import (
	"io"
	"time"

	"log/slog"

	"github.com/mindgrove/cortex/internal/db"
	"github.com/mindgrove/cortex/pkg/repository"
)

// Repo implements the repository interfaces using the internal DB wrapper.
type Repo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure Repo implements the public interfaces.
var _ repository.BlogRepo = (*Repo)(nil)
var _ repository.ResourceRepo = (*Repo)(nil)
var _ repository.ReviewRepo = (*Repo)(nil)
var _ repository.UserRepo = (*Repo)(nil)
var _ repository.TestRepo = (*Repo)(nil)

func New(conn *db.DB, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Repo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
