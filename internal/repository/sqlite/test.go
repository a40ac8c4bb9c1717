package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mindgrove/cortex/pkg/models"
)

func (r *Repo) CreateSession(ctx context.Context, s *models.TestSession) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}
	if s.ID == "" {
		return fmt.Errorf("session id is empty")
	}
	if s.Created == 0 {
		s.Created = now()
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO test_sessions (id, test_type, age, created) VALUES (?, ?, ?, ?)`,
		s.ID, s.TestType, s.Age, s.Created)
	return err
}

func (r *Repo) GetSession(ctx context.Context, id string) (*models.TestSession, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, test_type, age, created FROM test_sessions WHERE id = ?`, id)

	var s models.TestSession
	var age sql.NullInt64
	if err := row.Scan(&s.ID, &s.TestType, &age, &s.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if age.Valid {
		s.Age = &age.Int64
	}

	return &s, nil
}

func (r *Repo) CreateResult(ctx context.Context, res *models.TestResult) (int64, error) {
	if res == nil {
		return 0, fmt.Errorf("result is nil")
	}
	if res.Created == 0 {
		res.Created = now()
	}
	if len(res.DomainScores) == 0 {
		res.DomainScores = []byte(`{}`)
	}
	if len(res.CognitiveProfile) == 0 {
		res.CognitiveProfile = []byte(`{}`)
	}

	out, err := r.conn.Exec(ctx,
		`INSERT INTO test_results (session_id, total_score, domain_scores, cognitive_profile, percentile, created) VALUES (?, ?, ?, ?, ?, ?)`,
		res.SessionID, res.TotalScore, string(res.DomainScores), string(res.CognitiveProfile), res.Percentile, res.Created)
	if err != nil {
		return 0, err
	}

	return out.LastInsertId()
}

func (r *Repo) GetResult(ctx context.Context, id int64) (*models.TestResult, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, session_id, total_score, domain_scores, cognitive_profile, percentile, created FROM test_results WHERE id = ?`, id)

	var res models.TestResult
	var scores, profile string
	if err := row.Scan(&res.ID, &res.SessionID, &res.TotalScore, &scores, &profile, &res.Percentile, &res.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	res.DomainScores = []byte(scores)
	res.CognitiveProfile = []byte(profile)

	return &res, nil
}
