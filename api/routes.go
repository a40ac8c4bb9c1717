package api

import (
	"github.com/gorilla/mux"
	"github.com/mindgrove/cortex/internal/config"
	"github.com/mindgrove/cortex/internal/db"
	"github.com/mindgrove/cortex/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := NewSystemHandler(repo)
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	blogsHandler := NewBlogsHandler(repo, repo)
	resourcesHandler := NewResourcesHandler(repo)
	reviewsHandler := NewReviewsHandler(repo, repo)
	reportsHandler, err := NewReportsHandler(repo)
	if err != nil {
		return nil, err
	}

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signin", authHandler.Signin).Methods("POST")

	// Blog endpoints; fixed paths registered before the {ref} wildcard.
	api.HandleFunc("/blogs", blogsHandler.ListPublic).Methods("GET")
	api.HandleFunc("/blogs/featured", blogsHandler.ListFeatured).Methods("GET")
	api.HandleFunc("/blogs/recent", blogsHandler.ListRecent).Methods("GET")
	api.HandleFunc("/blogs/{ref}", blogsHandler.Get).Methods("GET")
	api.HandleFunc("/blogs/{ref}/like", blogsHandler.Like).Methods("POST")
	api.HandleFunc("/blogs/{ref}/view", blogsHandler.View).Methods("POST")
	api.HandleFunc("/blogs/{ref}/reviews", reviewsHandler.Create).Methods("POST")

	// Resource endpoints
	api.HandleFunc("/resources", resourcesHandler.ListPublic).Methods("GET")
	api.HandleFunc("/resources/{slug}/view", resourcesHandler.View).Methods("POST")

	// Test endpoints
	api.HandleFunc("/tests/sessions", reportsHandler.StartSession).Methods("POST")
	api.HandleFunc("/tests/results", reportsHandler.SubmitResult).Methods("POST")
	api.HandleFunc("/tests/report/{id}", reportsHandler.GetReport).Methods("GET")

	// Admin routes, gated by the JWT middleware
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	admin.HandleFunc("/blogs", blogsHandler.ListAll).Methods("GET")
	admin.HandleFunc("/blogs", blogsHandler.Create).Methods("POST")
	admin.HandleFunc("/resources", resourcesHandler.Create).Methods("POST")

	return r, nil
}
