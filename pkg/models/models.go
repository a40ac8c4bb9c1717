package models

import "encoding/json"

// Entity structs shared by the API layer, the repositories and the CLI
// tooling. Timestamps are UTC unix milliseconds.

type Blog struct {
	ID        int64  `json:"id" db:"id"`
	Slug      string `json:"slug" db:"slug"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content,omitempty" db:"content"`
	Excerpt   string `json:"excerpt,omitempty" db:"excerpt"`
	Image     string `json:"image,omitempty" db:"image"`
	Author    string `json:"author" db:"author"`
	Published bool   `json:"published" db:"published"`
	Featured  bool   `json:"featured" db:"featured"`
	Likes     int64  `json:"likes" db:"likes"`
	Views     int64  `json:"views" db:"views"`
	Created   int64  `json:"created" db:"created"`
}

// BlogSummary is the projection used by the recent listing; it carries
// no content or excerpt.
type BlogSummary struct {
	ID       int64  `json:"id" db:"id"`
	Slug     string `json:"slug" db:"slug"`
	Title    string `json:"title" db:"title"`
	Image    string `json:"image,omitempty" db:"image"`
	Author   string `json:"author" db:"author"`
	Featured bool   `json:"featured" db:"featured"`
	Likes    int64  `json:"likes" db:"likes"`
	Views    int64  `json:"views" db:"views"`
	Created  int64  `json:"created" db:"created"`
}

type Resource struct {
	ID        int64  `json:"id" db:"id"`
	Slug      string `json:"slug" db:"slug"`
	Title     string `json:"title" db:"title"`
	Type      string `json:"type" db:"type"`
	Thumbnail string `json:"thumbnail,omitempty" db:"thumbnail"`
	Published bool   `json:"published" db:"published"`
	Featured  bool   `json:"featured" db:"featured"`
	Views     int64  `json:"views" db:"views"`
	Created   int64  `json:"created" db:"created"`
}

type Review struct {
	ID      int64  `json:"id" db:"id"`
	BlogID  int64  `json:"blog_id" db:"blog_id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Comment string `json:"comment" db:"comment"`
	Rating  int    `json:"rating" db:"rating"`
	Created int64  `json:"created" db:"created"`
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Name         string `json:"name" db:"name"`
	Role         string `json:"role" db:"role"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Updated      int64  `json:"updated" db:"updated"`
}

type TestSession struct {
	ID       string `json:"id" db:"id"`
	TestType string `json:"test_type" db:"test_type"`
	Age      *int64 `json:"age,omitempty" db:"age"`
	Created  int64  `json:"created" db:"created"`
}

type TestResult struct {
	ID               int64           `json:"id" db:"id"`
	SessionID        string          `json:"session_id" db:"session_id"`
	TotalScore       float64         `json:"total_score" db:"total_score"`
	DomainScores     json.RawMessage `json:"domain_scores" db:"domain_scores"`
	CognitiveProfile json.RawMessage `json:"cognitive_profile,omitempty" db:"cognitive_profile"`
	Percentile       float64         `json:"percentile" db:"percentile"`
	Created          int64           `json:"created" db:"created"`
}
