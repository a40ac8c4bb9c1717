package repository

import (
	"context"

	"github.com/mindgrove/cortex/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type BlogRepo interface {
	CreateBlog(ctx context.Context, b *models.Blog) (int64, error)
	GetPublishedByID(ctx context.Context, id int64) (*models.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListPublished(ctx context.Context) ([]models.Blog, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Blog, error)
	ListRecent(ctx context.Context, limit int) ([]models.BlogSummary, error)
	ListAll(ctx context.Context) ([]models.Blog, error)
	IncrementLikesByID(ctx context.Context, id int64) (int64, error)
	IncrementLikesBySlug(ctx context.Context, slug string) (int64, error)
	IncrementViewsByID(ctx context.Context, id int64) (int64, error)
	IncrementViewsBySlug(ctx context.Context, slug string) (int64, error)
}

type ResourceRepo interface {
	CreateResource(ctx context.Context, res *models.Resource) (int64, error)
	ListPublishedResources(ctx context.Context) ([]models.Resource, error)
	IncrementResourceViewsBySlug(ctx context.Context, slug string) (int64, error)
}

type ReviewRepo interface {
	CreateReview(ctx context.Context, rv *models.Review) (int64, error)
	ListByBlog(ctx context.Context, blogID int64, limit int) ([]models.Review, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	CountUsers(ctx context.Context) (int64, error)
}

type TestRepo interface {
	CreateSession(ctx context.Context, s *models.TestSession) error
	GetSession(ctx context.Context, id string) (*models.TestSession, error)
	CreateResult(ctx context.Context, r *models.TestResult) (int64, error)
	GetResult(ctx context.Context, id int64) (*models.TestResult, error)
}
