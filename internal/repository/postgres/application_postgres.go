package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

// ApplicationPostgres is a PostgreSQL implementation of
// repository.ApplicationRepository. It uses database/sql with parameterized
// queries and contains no business logic. A unique index on
// (job_id, candidate_id) makes Create an atomic insert-if-absent, so the
// uniqueness invariant holds under concurrent submissions.
type ApplicationPostgres struct {
	db *sql.DB
}

// NewApplicationPostgres creates a new ApplicationPostgres repository.
func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

const applicationColumns = "id, job_id, candidate_id, status, score, applied_at, updated_at, interview_date"

func scanApplication(row interface{ Scan(...any) error }) (*model.Application, error) {
	var a model.Application
	if err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.CandidateID,
		&a.Status,
		&a.Score,
		&a.AppliedAt,
		&a.UpdatedAt,
		&a.InterviewDate,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application row and returns the stored record.
func (r *ApplicationPostgres) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	const q = `
		INSERT INTO applications (id, job_id, candidate_id, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + applicationColumns
	row := r.db.QueryRowContext(ctx, q,
		app.ID,
		app.JobID,
		app.CandidateID,
		app.Status,
		app.AppliedAt,
	)
	out, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("application for job %s and candidate %s: %w", app.JobID, app.CandidateID, repository.ErrDuplicate)
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single application by its ID.
func (r *ApplicationPostgres) FindByID(ctx context.Context, id string) (*model.Application, error) {
	const q = `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, q, id))
}

// UpdateStatus reads the current status under a row lock, writes the new
// one and returns the replaced value.
func (r *ApplicationPostgres) UpdateStatus(ctx context.Context, id string, status model.Status) (model.Status, error) {
	return r.transition(ctx, id, func(tx *sql.Tx) error {
		const q = `UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`
		_, err := tx.ExecContext(ctx, q, id, status)
		return err
	})
}

// ScheduleInterview sets the interview date and forces the interview status
// in one transaction, returning the replaced status.
func (r *ApplicationPostgres) ScheduleInterview(ctx context.Context, id string, when time.Time) (model.Status, error) {
	return r.transition(ctx, id, func(tx *sql.Tx) error {
		const q = `UPDATE applications SET status = $2, interview_date = $3, updated_at = now() WHERE id = $1`
		_, err := tx.ExecContext(ctx, q, id, model.StatusInterview, when)
		return err
	})
}

func (r *ApplicationPostgres) transition(ctx context.Context, id string, write func(tx *sql.Tx) error) (model.Status, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var previous model.Status
	const q = `SELECT status FROM applications WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, q, id).Scan(&previous); err != nil {
		return "", err
	}
	if err := write(tx); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return previous, nil
}

// UpdateScore persists the fit score and bumps updated_at.
func (r *ApplicationPostgres) UpdateScore(ctx context.Context, id string, score float64) error {
	const q = `UPDATE applications SET score = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, score)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// MoveToJob copies the application to the destination job and deletes the
// original under one transaction. The destination uniqueness check rides on
// the same unique index as Create.
func (r *ApplicationPostgres) MoveToJob(ctx context.Context, id, destJobID, newID string) (*model.Application, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var candidateID string
	const qFind = `SELECT candidate_id FROM applications WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, qFind, id).Scan(&candidateID); err != nil {
		return nil, err
	}

	const qInsert = `
		INSERT INTO applications (id, job_id, candidate_id, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING ` + applicationColumns
	moved, err := scanApplication(tx.QueryRowContext(ctx, qInsert, newID, destJobID, candidateID, model.StatusNew))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("application for job %s and candidate %s: %w", destJobID, candidateID, repository.ErrDuplicate)
		}
		return nil, err
	}

	const qDelete = `DELETE FROM applications WHERE id = $1`
	if _, err := tx.ExecContext(ctx, qDelete, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return moved, nil
}

// Delete removes an application by ID. A missing row surfaces sql.ErrNoRows.
func (r *ApplicationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM applications WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetDocumentPath writes a storage path into the column named by kind.
// The kind is validated against the whitelist before interpolation; the
// path itself stays parameterized.
func (r *ApplicationPostgres) SetDocumentPath(ctx context.Context, id string, kind model.DocumentKind, path string) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown document kind %q", kind)
	}
	q := fmt.Sprintf(`UPDATE applications SET %s = $2, updated_at = now() WHERE id = $1`, kind)
	res, err := r.db.ExecContext(ctx, q, id, path)
	if err != nil {
		if isUndefinedColumn(err) {
			return fmt.Errorf("column %s: %w", kind, repository.ErrUndefinedColumn)
		}
		return err
	}
	return requireRow(res)
}

// ProvisionDocumentColumn adds the nullable column for kind. Losing a race
// with a parallel provisioning attempt is success.
func (r *ApplicationPostgres) ProvisionDocumentColumn(ctx context.Context, kind model.DocumentKind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown document kind %q", kind)
	}
	q := fmt.Sprintf(`ALTER TABLE applications ADD COLUMN IF NOT EXISTS %s TEXT`, kind)
	if _, err := r.db.ExecContext(ctx, q); err != nil && !isDuplicateColumn(err) {
		return err
	}
	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
