package postgres

import (
	"context"
	"database/sql"

	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

// CandidatePostgres is a PostgreSQL implementation of
// repository.CandidateRepository. FindByID loads the full profile —
// experiences and educations included — since the scorer folds all of it
// into its corpus.
type CandidatePostgres struct {
	db *sql.DB
}

// NewCandidatePostgres creates a new CandidatePostgres repository.
func NewCandidatePostgres(db *sql.DB) *CandidatePostgres {
	return &CandidatePostgres{db: db}
}

var _ repository.CandidateRepository = (*CandidatePostgres)(nil)

// FindByID fetches a candidate with experience and education entries.
func (r *CandidatePostgres) FindByID(ctx context.Context, id string) (*model.Candidate, error) {
	const q = `
		SELECT id, name, COALESCE(resume_text, ''), created_at
		FROM candidates
		WHERE id = $1
	`
	var c model.Candidate
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID,
		&c.Name,
		&c.ResumeText,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	experiences, err := r.experiences(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Experiences = experiences

	educations, err := r.educations(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Educations = educations

	return &c, nil
}

func (r *CandidatePostgres) experiences(ctx context.Context, candidateID string) ([]model.Experience, error) {
	const q = `
		SELECT id, title, company, start_date, end_date, is_current, COALESCE(description, '')
		FROM experiences
		WHERE candidate_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.db.QueryContext(ctx, q, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Experience, 0)
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *CandidatePostgres) educations(ctx context.Context, candidateID string) ([]model.Education, error) {
	const q = `
		SELECT id, institution, degree, COALESCE(major, ''), start_date, end_date
		FROM educations
		WHERE candidate_id = $1
		ORDER BY start_date DESC NULLS LAST
	`
	rows, err := r.db.QueryContext(ctx, q, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Education, 0)
	for rows.Next() {
		var e model.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Major, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
