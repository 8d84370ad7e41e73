package postgres

import (
	"context"
	"database/sql"

	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

// JobPostgres is a PostgreSQL implementation of repository.JobRepository.
type JobPostgres struct {
	db *sql.DB
}

// NewJobPostgres creates a new JobPostgres repository.
func NewJobPostgres(db *sql.DB) *JobPostgres {
	return &JobPostgres{db: db}
}

var _ repository.JobRepository = (*JobPostgres)(nil)

// FindByID fetches a single job by its ID.
func (r *JobPostgres) FindByID(ctx context.Context, id string) (*model.Job, error) {
	const q = `
		SELECT id, title, description, qualifications, experience_level, department, location, advertised_at, created_at
		FROM jobs
		WHERE id = $1
	`
	var j model.Job
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Qualifications,
		&j.ExperienceLevel,
		&j.Department,
		&j.Location,
		&j.AdvertisedAt,
		&j.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}
