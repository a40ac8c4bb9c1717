package api_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mindgrove/cortex/api"
	dbfs "github.com/mindgrove/cortex/db"
	"github.com/mindgrove/cortex/internal/config"
	"github.com/mindgrove/cortex/internal/db"
	sqlite "github.com/mindgrove/cortex/internal/repository/sqlite"
)

const testJWTSecret = "testsecret"

// setupServer boots the full router against an in-memory database with the
// embedded migrations applied, and hands back the repository for seeding.
func setupServer(t *testing.T) (*httptest.Server, *sqlite.Repo, func()) {
	t.Helper()
	ctx := context.Background()

	d, err := db.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}

	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	cfg := &config.Config{
		Addr:               ":0",
		JWTSecret:          testJWTSecret,
		APITimeout:         5 * time.Second,
		TokenDuration:      time.Hour,
		CORSAllowedOrigins: []string{"*"},
	}

	handler, err := api.SetupRoutes(cfg, "test", "now", d)
	if err != nil {
		d.Close()
		t.Fatalf("setup routes: %v", err)
	}

	repo := sqlite.New(d, nil)
	srv := httptest.NewServer(handler)
	return srv, repo, func() { srv.Close(); d.Close() }
}

// adminToken signs a short-lived token accepted by the admin gate.
func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
