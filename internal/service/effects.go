package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"smartrecruit/internal/letters"
	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

// TransitionEvent describes a committed status change.
type TransitionEvent struct {
	ApplicationID string
	Previous      model.Status
	New           model.Status
}

// Coordinator reacts to lifecycle events with externally-visible actions:
// notifications, document generation and document-path persistence. Every
// action here is fire-and-forget relative to the transition that triggered
// it — a failed notification is logged with enough context to replay it
// manually, never rolled back into the caller.
type Coordinator struct {
	apps          repository.ApplicationRepository
	jobs          repository.JobRepository
	candidates    repository.CandidateRepository
	notifications repository.NotificationRepository
	renderer      letters.Renderer
	logger        *zap.Logger

	transitions *prometheus.CounterVec
}

// NewCoordinator wires the side-effect coordinator and registers its
// transition counter on reg.
func NewCoordinator(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	notifications repository.NotificationRepository,
	renderer letters.Renderer,
	logger *zap.Logger,
	reg prometheus.Registerer,
) (*Coordinator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	transitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "application_status_transitions_total",
			Help: "Total number of application status transitions processed.",
		},
		[]string{"from", "to"},
	)
	if err := reg.Register(transitions); err != nil {
		return nil, err
	}

	return &Coordinator{
		apps:          apps,
		jobs:          jobs,
		candidates:    candidates,
		notifications: notifications,
		renderer:      renderer,
		logger:        logger,
		transitions:   transitions,
	}, nil
}

// OnTransition handles a committed status change. The transition itself has
// already been persisted; nothing here may fail it retroactively.
func (c *Coordinator) OnTransition(ctx context.Context, ev TransitionEvent) {
	c.transitions.WithLabelValues(string(ev.Previous), string(ev.New)).Inc()

	if ev.New == model.StatusHired {
		c.issueAppointmentLetter(ctx, ev)
	}
}

// issueAppointmentLetter renders the appointment letter for a hired
// candidate, persists its storage path and notifies the candidate.
func (c *Coordinator) issueAppointmentLetter(ctx context.Context, ev TransitionEvent) {
	app, err := c.apps.FindByID(ctx, ev.ApplicationID)
	if err != nil {
		c.logEffectFailure(ev.ApplicationID, "load_application", err)
		return
	}
	cand, err := c.candidates.FindByID(ctx, app.CandidateID)
	if err != nil {
		c.logEffectFailure(ev.ApplicationID, "load_candidate", err)
		return
	}
	job, err := c.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		c.logEffectFailure(ev.ApplicationID, "load_job", err)
		return
	}

	now := time.Now().UTC()
	tokens := map[string]string{
		letters.TokenCandidateName:  cand.Name,
		letters.TokenDesignation:    job.Title,
		letters.TokenDepartment:     job.Department,
		letters.TokenEmploymentType: "Permanent",
		letters.TokenJoiningDate:    now.AddDate(0, 0, 14).Format("2006-01-02"),
		letters.TokenCurrentDate:    now.Format("2006-01-02"),
	}

	path, err := c.renderer.Render(ctx, letters.TemplateAppointmentLetter, tokens)
	if err != nil {
		c.logEffectFailure(ev.ApplicationID, "render_appointment_letter", err)
		return
	}

	if err := c.SaveDocumentPath(ctx, app.ID, model.DocAppointmentLetter, path); err != nil {
		c.logEffectFailure(ev.ApplicationID, "persist_appointment_letter_path", err)
	}

	notification := &model.Notification{
		ID:       uuid.NewString(),
		TargetID: app.CandidateID,
		Type:     "application_status",
		Title:    "Appointment Letter Issued",
		Message:  fmt.Sprintf("Your appointment letter for %s is ready.", job.Title),
		Data: map[string]any{
			"application_id": app.ID,
			"status":         string(ev.New),
		},
		CreatedAt: now,
	}
	if _, err := c.notifications.Create(ctx, notification); err != nil {
		c.logEffectFailure(ev.ApplicationID, "notify_candidate", err)
	}
}

// SaveDocumentPath persists a generated-document storage path. When the
// target column does not exist yet it is provisioned and the write retried
// exactly once; a second failure is fatal for this write path. A concurrent
// "column already exists" during provisioning counts as success.
func (c *Coordinator) SaveDocumentPath(ctx context.Context, appID string, kind model.DocumentKind, path string) error {
	err := c.apps.SetDocumentPath(ctx, appID, kind, path)
	if err == nil || !errors.Is(err, repository.ErrUndefinedColumn) {
		return err
	}

	c.logger.Info("provisioning document column",
		zap.String("application_id", appID),
		zap.String("document_kind", string(kind)),
	)
	if provErr := c.apps.ProvisionDocumentColumn(ctx, kind); provErr != nil {
		return fmt.Errorf("%w: provision column %s: %v", ErrSchemaProvisionFailed, kind, provErr)
	}
	if err := c.apps.SetDocumentPath(ctx, appID, kind, path); err != nil {
		return fmt.Errorf("%w: retry after provisioning column %s: %v", ErrSchemaProvisionFailed, kind, err)
	}
	return nil
}

func (c *Coordinator) logEffectFailure(appID, effect string, err error) {
	c.logger.Error("side effect failed",
		zap.String("application_id", appID),
		zap.String("effect", effect),
		zap.Error(err),
	)
}
