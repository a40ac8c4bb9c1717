package mock

import (
	"context"
	"database/sql"

	"github.com/mindgrove/cortex/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Blogs     *BlogRepo
	Resources *ResourceRepo
	Reviews   *ReviewRepo
	Users     *UserRepo
	Tests     *TestRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Blogs:     &BlogRepo{},
		Resources: &ResourceRepo{},
		Reviews:   &ReviewRepo{},
		Users:     &UserRepo{},
		Tests:     &TestRepo{},
	}
}

type BlogRepo struct {
	Stored []models.Blog
	Err    error
}

func (m *BlogRepo) CreateBlog(ctx context.Context, b *models.Blog) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	id := int64(len(m.Stored) + 1)
	nb := *b
	nb.ID = id
	m.Stored = append(m.Stored, nb)
	return id, nil
}

func (m *BlogRepo) GetPublishedByID(ctx context.Context, id int64) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id && m.Stored[i].Published {
			b := m.Stored[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *BlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].Slug == slug && m.Stored[i].Published {
			b := m.Stored[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *BlogRepo) ListPublished(ctx context.Context) ([]models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Blog
	for _, b := range m.Stored {
		if b.Published {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *BlogRepo) ListFeatured(ctx context.Context, limit int) ([]models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Blog
	for _, b := range m.Stored {
		if b.Published && b.Featured && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *BlogRepo) ListRecent(ctx context.Context, limit int) ([]models.BlogSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.BlogSummary
	for _, b := range m.Stored {
		if b.Published && len(out) < limit {
			out = append(out, models.BlogSummary{ID: b.ID, Slug: b.Slug, Title: b.Title, Image: b.Image, Author: b.Author, Featured: b.Featured, Likes: b.Likes, Views: b.Views, Created: b.Created})
		}
	}
	return out, nil
}

func (m *BlogRepo) ListAll(ctx context.Context) ([]models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Blog(nil), m.Stored...), nil
}

func (m *BlogRepo) IncrementLikesByID(ctx context.Context, id int64) (int64, error) {
	return m.bump(id, "", true)
}

func (m *BlogRepo) IncrementLikesBySlug(ctx context.Context, slug string) (int64, error) {
	return m.bump(0, slug, true)
}

func (m *BlogRepo) IncrementViewsByID(ctx context.Context, id int64) (int64, error) {
	return m.bump(id, "", false)
}

func (m *BlogRepo) IncrementViewsBySlug(ctx context.Context, slug string) (int64, error) {
	return m.bump(0, slug, false)
}

func (m *BlogRepo) bump(id int64, slug string, likes bool) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i := range m.Stored {
		if (id != 0 && m.Stored[i].ID == id) || (slug != "" && m.Stored[i].Slug == slug) {
			if likes {
				m.Stored[i].Likes++
				return m.Stored[i].Likes, nil
			}
			m.Stored[i].Views++
			return m.Stored[i].Views, nil
		}
	}
	return 0, sql.ErrNoRows
}

type ResourceRepo struct {
	Stored []models.Resource
	Err    error
}

func (m *ResourceRepo) CreateResource(ctx context.Context, res *models.Resource) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	id := int64(len(m.Stored) + 1)
	nr := *res
	nr.ID = id
	m.Stored = append(m.Stored, nr)
	return id, nil
}

func (m *ResourceRepo) ListPublishedResources(ctx context.Context) ([]models.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Resource
	for _, res := range m.Stored {
		if res.Published {
			out = append(out, res)
		}
	}
	return out, nil
}

func (m *ResourceRepo) IncrementResourceViewsBySlug(ctx context.Context, slug string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i := range m.Stored {
		if m.Stored[i].Slug == slug {
			m.Stored[i].Views++
			return m.Stored[i].Views, nil
		}
	}
	return 0, sql.ErrNoRows
}

type ReviewRepo struct {
	Stored    []models.Review
	CreateErr error
}

func (m *ReviewRepo) CreateReview(ctx context.Context, rv *models.Review) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	id := int64(len(m.Stored) + 1)
	nr := *rv
	nr.ID = id
	m.Stored = append(m.Stored, nr)
	return id, nil
}

func (m *ReviewRepo) ListByBlog(ctx context.Context, blogID int64, limit int) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range m.Stored {
		if rv.BlogID == blogID && len(out) < limit {
			out = append(out, rv)
		}
	}
	return out, nil
}

type UserRepo struct {
	Stored   *models.User
	CountErr error
	Count    int64
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	nu := *u
	nu.ID = 1
	m.Stored = &nu
	return 1, nil
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if m.Stored == nil || m.Stored.Email != email {
		return sql.ErrNoRows
	}
	m.Stored.PasswordHash = passwordHash
	return nil
}

func (m *UserRepo) CountUsers(ctx context.Context) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return m.Count, nil
}

type TestRepo struct {
	Sessions   map[string]models.TestSession
	Results    map[int64]models.TestResult
	SessionErr error
	ResultErr  error
	nextID     int64
}

func (m *TestRepo) CreateSession(ctx context.Context, s *models.TestSession) error {
	if m.SessionErr != nil {
		return m.SessionErr
	}
	if m.Sessions == nil {
		m.Sessions = map[string]models.TestSession{}
	}
	m.Sessions[s.ID] = *s
	return nil
}

func (m *TestRepo) GetSession(ctx context.Context, id string) (*models.TestSession, error) {
	if m.SessionErr != nil {
		return nil, m.SessionErr
	}
	if s, ok := m.Sessions[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *TestRepo) CreateResult(ctx context.Context, r *models.TestResult) (int64, error) {
	if m.ResultErr != nil {
		return 0, m.ResultErr
	}
	if m.Results == nil {
		m.Results = map[int64]models.TestResult{}
	}
	m.nextID++
	nr := *r
	nr.ID = m.nextID
	m.Results[nr.ID] = nr
	return nr.ID, nil
}

func (m *TestRepo) GetResult(ctx context.Context, id int64) (*models.TestResult, error) {
	if m.ResultErr != nil {
		return nil, m.ResultErr
	}
	if r, ok := m.Results[id]; ok {
		return &r, nil
	}
	return nil, nil
}
