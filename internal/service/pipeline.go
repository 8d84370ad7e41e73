package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartrecruit/internal/match"
	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
	"smartrecruit/internal/screening"
)

// NotificationListResult is the service-level DTO for paginated notifications.
type NotificationListResult struct {
	Items []model.Notification `json:"data"`
	Total int                  `json:"total"`
}

// PipelineService exposes the operations consumed by the UI/API layer:
// admission, lifecycle transitions, scoring and the append-only engagement
// writes. Statuses are validated against the enumerated set only — there is
// deliberately no transition graph, matching the reference behavior.
type PipelineService interface {
	// CreateApplication admits a candidate to a job's pipeline in status
	// new. When the candidate has resume text on file the eligibility gate
	// runs first and an inadmissible candidate fails with ErrNotEligible.
	// A second active application for the pair fails with
	// ErrDuplicateApplication.
	CreateApplication(ctx context.Context, jobID, candidateID string) (*model.Application, error)

	// DeleteApplication hard-deletes. Deleting a missing application fails
	// with ErrNotFound.
	DeleteApplication(ctx context.Context, id string) error

	// SetStatus moves an application to any of the eight statuses and hands
	// the committed transition to the side-effect coordinator.
	SetStatus(ctx context.Context, id string, status model.Status) error

	// ScheduleInterview sets the interview date, which must be strictly in
	// the future, and forces the interview status.
	ScheduleInterview(ctx context.Context, id string, when time.Time) error

	// MoveToJob re-homes an application onto another job as
	// create-new-then-delete-old, re-checking uniqueness at the destination.
	MoveToJob(ctx context.Context, id, destJobID string) (*model.Application, error)

	// Rescore recomputes and persists the deterministic 0-10 fit score.
	Rescore(ctx context.Context, id string) (float64, error)

	// CheckEligibility runs the pre-application admission check for a job
	// against raw resume text.
	CheckEligibility(ctx context.Context, jobID, resumeText string) (*screening.Assessment, error)

	// AttachDocument persists a generated-document storage path on an
	// application, provisioning the column on first use.
	AttachDocument(ctx context.Context, id string, kind model.DocumentKind, path string) error

	// RecordReferral, RecordNote, RecordReview and RecordTeamPost are
	// append-only inserts with no further side effects.
	RecordReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error)
	RecordNote(ctx context.Context, note *model.CandidateNote) (*model.CandidateNote, error)
	RecordReview(ctx context.Context, review *model.Review) (*model.Review, error)
	RecordTeamPost(ctx context.Context, post *model.TeamPost) (*model.TeamPost, error)

	// Notifications lists a recipient's notifications; MarkNotificationRead
	// flips the read flag.
	Notifications(ctx context.Context, targetID string, limit, offset int) (*NotificationListResult, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// pipelineService is a concrete implementation of PipelineService.
type pipelineService struct {
	apps          repository.ApplicationRepository
	jobs          repository.JobRepository
	candidates    repository.CandidateRepository
	notifications repository.NotificationRepository
	engagement    repository.EngagementRepository
	gate          *screening.Gate
	effects       *Coordinator
	logger        *zap.Logger
}

// NewPipelineService constructs a new PipelineService.
func NewPipelineService(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	notifications repository.NotificationRepository,
	engagement repository.EngagementRepository,
	gate *screening.Gate,
	effects *Coordinator,
	logger *zap.Logger,
) PipelineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pipelineService{
		apps:          apps,
		jobs:          jobs,
		candidates:    candidates,
		notifications: notifications,
		engagement:    engagement,
		gate:          gate,
		effects:       effects,
		logger:        logger,
	}
}

func (s *pipelineService) CreateApplication(ctx context.Context, jobID, candidateID string) (*model.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, storeErr(err)
	}
	cand, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, storeErr(err)
	}

	// The gate only runs when resume text was supplied with the profile.
	if cand.ResumeText != "" {
		assessment, err := s.gate.Check(ctx, job, cand.ResumeText)
		if err != nil {
			return nil, err
		}
		if !assessment.Eligible {
			return nil, fmt.Errorf("%w: reviewer score %d", ErrNotEligible, assessment.Score)
		}
	}

	now := time.Now().UTC()
	app := &model.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      model.StatusNew,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, storeErr(err)
	}
	return created, nil
}

func (s *pipelineService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.apps.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *pipelineService) SetStatus(ctx context.Context, id string, status model.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	previous, err := s.apps.UpdateStatus(ctx, id, status)
	if err != nil {
		return storeErr(err)
	}

	s.effects.OnTransition(ctx, TransitionEvent{
		ApplicationID: id,
		Previous:      previous,
		New:           status,
	})
	return nil
}

func (s *pipelineService) ScheduleInterview(ctx context.Context, id string, when time.Time) error {
	if !when.After(time.Now()) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeWindow, when.Format(time.RFC3339))
	}

	previous, err := s.apps.ScheduleInterview(ctx, id, when.UTC())
	if err != nil {
		return storeErr(err)
	}

	s.effects.OnTransition(ctx, TransitionEvent{
		ApplicationID: id,
		Previous:      previous,
		New:           model.StatusInterview,
	})
	return nil
}

func (s *pipelineService) MoveToJob(ctx context.Context, id, destJobID string) (*model.Application, error) {
	if _, err := s.jobs.FindByID(ctx, destJobID); err != nil {
		return nil, storeErr(err)
	}

	moved, err := s.apps.MoveToJob(ctx, id, destJobID, uuid.NewString())
	if err != nil {
		return nil, storeErr(err)
	}
	return moved, nil
}

func (s *pipelineService) Rescore(ctx context.Context, id string) (float64, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return 0, storeErr(err)
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return 0, storeErr(err)
	}
	cand, err := s.candidates.FindByID(ctx, app.CandidateID)
	if err != nil {
		return 0, storeErr(err)
	}

	score := match.Score(job, cand)
	if err := s.apps.UpdateScore(ctx, id, score); err != nil {
		return 0, storeErr(err)
	}
	return score, nil
}

func (s *pipelineService) CheckEligibility(ctx context.Context, jobID, resumeText string) (*screening.Assessment, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, storeErr(err)
	}
	return s.gate.Check(ctx, job, resumeText)
}

func (s *pipelineService) AttachDocument(ctx context.Context, id string, kind model.DocumentKind, path string) error {
	if err := s.effects.SaveDocumentPath(ctx, id, kind, path); err != nil {
		if errors.Is(err, ErrSchemaProvisionFailed) {
			return err
		}
		return storeErr(err)
	}
	return nil
}

func (s *pipelineService) RecordReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error) {
	ref.ID = uuid.NewString()
	ref.CreatedAt = time.Now().UTC()
	out, err := s.engagement.CreateReferral(ctx, ref)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *pipelineService) RecordNote(ctx context.Context, note *model.CandidateNote) (*model.CandidateNote, error) {
	note.ID = uuid.NewString()
	note.CreatedAt = time.Now().UTC()
	out, err := s.engagement.CreateNote(ctx, note)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *pipelineService) RecordReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	review.ID = uuid.NewString()
	review.CreatedAt = time.Now().UTC()
	out, err := s.engagement.CreateReview(ctx, review)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *pipelineService) RecordTeamPost(ctx context.Context, post *model.TeamPost) (*model.TeamPost, error) {
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now().UTC()
	out, err := s.engagement.CreateTeamPost(ctx, post)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *pipelineService) Notifications(ctx context.Context, targetID string, limit, offset int) (*NotificationListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.notifications.ListForTarget(ctx, targetID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, storeErr(err)
	}
	return &NotificationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *pipelineService) MarkNotificationRead(ctx context.Context, id string) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

// storeErr translates repository-level conditions into the service
// taxonomy. Anything unclassified is reported as store unavailability.
func storeErr(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrDuplicateApplication
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
