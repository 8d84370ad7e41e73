package repository

import (
	"context"
	"time"

	"smartrecruit/internal/model"
)

// ApplicationRepository defines data access for applications using SQL
// queries only. No business logic here — strictly persistence operations.
// Transition methods return the previous status so the caller can emit the
// corresponding event; the read and write happen in one transaction.
type ApplicationRepository interface {
	// Create inserts a new application record. The (job, candidate)
	// uniqueness invariant is enforced at the store boundary: a concurrent
	// duplicate insert fails with ErrDuplicate.
	Create(ctx context.Context, app *model.Application) (*model.Application, error)

	// FindByID returns an application by its ID.
	FindByID(ctx context.Context, id string) (*model.Application, error)

	// UpdateStatus persists the new status and bumps updated_at, returning
	// the status that was replaced. Missing rows surface sql.ErrNoRows.
	UpdateStatus(ctx context.Context, id string, status model.Status) (model.Status, error)

	// UpdateScore persists a 0-10 fit score and bumps updated_at.
	UpdateScore(ctx context.Context, id string, score float64) error

	// ScheduleInterview sets the interview date and forces the status to
	// interview, returning the replaced status.
	ScheduleInterview(ctx context.Context, id string, when time.Time) (model.Status, error)

	// MoveToJob re-homes an application as create-new-then-delete-old under
	// one transaction. newID is the identifier for the replacement row. A
	// clash with an existing application on the destination job fails with
	// ErrDuplicate and leaves the original untouched.
	MoveToJob(ctx context.Context, id, destJobID, newID string) (*model.Application, error)

	// Delete hard-deletes an application. Deleting a missing row surfaces
	// sql.ErrNoRows rather than being silently ignored.
	Delete(ctx context.Context, id string) error

	// SetDocumentPath stores a generated-document storage path in the
	// column named by kind. Writes against a not-yet-provisioned column
	// fail with ErrUndefinedColumn.
	SetDocumentPath(ctx context.Context, id string, kind model.DocumentKind, path string) error

	// ProvisionDocumentColumn issues the additive, nullable column
	// statement for kind. A concurrent "column already exists" outcome is
	// success, not an error.
	ProvisionDocumentColumn(ctx context.Context, kind model.DocumentKind) error
}
