package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	letterMocks "smartrecruit/internal/letters/mocks"
	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
	repoMocks "smartrecruit/internal/repository/mocks"
)

type coordinatorFixture struct {
	apps          *repoMocks.MockApplicationRepository
	jobs          *repoMocks.MockJobRepository
	candidates    *repoMocks.MockCandidateRepository
	notifications *repoMocks.MockNotificationRepository
	renderer      *letterMocks.MockRenderer
	coordinator   *Coordinator
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	t.Helper()

	f := &coordinatorFixture{
		apps:          new(repoMocks.MockApplicationRepository),
		jobs:          new(repoMocks.MockJobRepository),
		candidates:    new(repoMocks.MockCandidateRepository),
		notifications: new(repoMocks.MockNotificationRepository),
		renderer:      new(letterMocks.MockRenderer),
	}

	coordinator, err := NewCoordinator(
		f.apps, f.jobs, f.candidates, f.notifications, f.renderer, nil, prometheus.NewRegistry(),
	)
	require.NoError(t, err)
	f.coordinator = coordinator
	return f
}

func hiredFixtureData() (*model.Application, *model.Candidate, *model.Job) {
	now := time.Now().UTC()
	app := &model.Application{
		ID: "app-1", JobID: "job-1", CandidateID: "cand-1",
		Status: model.StatusHired, AppliedAt: now, UpdatedAt: now,
	}
	cand := &model.Candidate{ID: "cand-1", Name: "Aisha Khan"}
	job := &model.Job{ID: "job-1", Title: "Senior Backend Engineer", Department: "Engineering"}
	return app, cand, job
}

func TestCoordinator_OnTransition_Hired(t *testing.T) {
	ctx := context.Background()
	ev := TransitionEvent{ApplicationID: "app-1", Previous: model.StatusOffered, New: model.StatusHired}

	t.Run("renders letter, persists path and notifies candidate", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		app, cand, job := hiredFixtureData()

		f.apps.On("FindByID", ctx, "app-1").Return(app, nil).Once()
		f.candidates.On("FindByID", ctx, "cand-1").Return(cand, nil).Once()
		f.jobs.On("FindByID", ctx, "job-1").Return(job, nil).Once()
		f.renderer.On("Render", ctx, "appointment_letter", mock.MatchedBy(func(tokens map[string]string) bool {
			return tokens["candidate_name"] == "Aisha Khan" && tokens["designation"] == "Senior Backend Engineer"
		})).Return("letters/appointment_letter/abc.txt", nil).Once()
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocAppointmentLetter, "letters/appointment_letter/abc.txt").
			Return(nil).Once()
		f.notifications.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
			return n.TargetID == "cand-1" &&
				n.Title == "Appointment Letter Issued" &&
				n.Data["application_id"] == "app-1" &&
				n.Data["status"] == "hired"
		})).Return(&model.Notification{ID: "n-1"}, nil).Once()

		f.coordinator.OnTransition(ctx, ev)

		f.apps.AssertExpectations(t)
		f.renderer.AssertExpectations(t)
		f.notifications.AssertExpectations(t)
	})

	t.Run("render failure skips notification", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		app, cand, job := hiredFixtureData()

		f.apps.On("FindByID", ctx, "app-1").Return(app, nil).Once()
		f.candidates.On("FindByID", ctx, "cand-1").Return(cand, nil).Once()
		f.jobs.On("FindByID", ctx, "job-1").Return(job, nil).Once()
		f.renderer.On("Render", ctx, "appointment_letter", mock.Anything).
			Return("", errors.New("template store down")).Once()

		f.coordinator.OnTransition(ctx, ev)

		f.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not propagate", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		app, cand, job := hiredFixtureData()

		f.apps.On("FindByID", ctx, "app-1").Return(app, nil).Once()
		f.candidates.On("FindByID", ctx, "cand-1").Return(cand, nil).Once()
		f.jobs.On("FindByID", ctx, "job-1").Return(job, nil).Once()
		f.renderer.On("Render", ctx, "appointment_letter", mock.Anything).
			Return("letters/appointment_letter/abc.txt", nil).Once()
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocAppointmentLetter, mock.Anything).
			Return(nil).Once()
		f.notifications.On("Create", ctx, mock.Anything).
			Return(nil, errors.New("notifications table locked")).Once()

		f.coordinator.OnTransition(ctx, ev)

		f.notifications.AssertExpectations(t)
	})

	t.Run("non-hired transitions trigger no effects", func(t *testing.T) {
		f := newCoordinatorFixture(t)

		f.coordinator.OnTransition(ctx, TransitionEvent{
			ApplicationID: "app-1", Previous: model.StatusNew, New: model.StatusShortlisted,
		})

		f.apps.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCoordinator_SaveDocumentPath(t *testing.T) {
	ctx := context.Background()

	t.Run("first write succeeds", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocOfferLetter, "letters/o.txt").
			Return(nil).Once()

		err := f.coordinator.SaveDocumentPath(ctx, "app-1", model.DocOfferLetter, "letters/o.txt")

		assert.NoError(t, err)
		f.apps.AssertNotCalled(t, "ProvisionDocumentColumn", mock.Anything, mock.Anything)
	})

	t.Run("unknown column provisions and retries once", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocHostelForm, "letters/h.txt").
			Return(repository.ErrUndefinedColumn).Once()
		f.apps.On("ProvisionDocumentColumn", ctx, model.DocHostelForm).Return(nil).Once()
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocHostelForm, "letters/h.txt").
			Return(nil).Once()

		err := f.coordinator.SaveDocumentPath(ctx, "app-1", model.DocHostelForm, "letters/h.txt")

		assert.NoError(t, err)
		f.apps.AssertExpectations(t)
	})

	t.Run("provisioning failure is fatal", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocHostelForm, "letters/h.txt").
			Return(repository.ErrUndefinedColumn).Once()
		f.apps.On("ProvisionDocumentColumn", ctx, model.DocHostelForm).
			Return(errors.New("permission denied")).Once()

		err := f.coordinator.SaveDocumentPath(ctx, "app-1", model.DocHostelForm, "letters/h.txt")

		assert.ErrorIs(t, err, ErrSchemaProvisionFailed)
	})

	t.Run("second write failure is fatal, no third attempt", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocHostelForm, "letters/h.txt").
			Return(repository.ErrUndefinedColumn).Twice()
		f.apps.On("ProvisionDocumentColumn", ctx, model.DocHostelForm).Return(nil).Once()

		err := f.coordinator.SaveDocumentPath(ctx, "app-1", model.DocHostelForm, "letters/h.txt")

		assert.ErrorIs(t, err, ErrSchemaProvisionFailed)
		f.apps.AssertNumberOfCalls(t, "SetDocumentPath", 2)
	})

	t.Run("unrelated store errors pass through unchanged", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		connErr := errors.New("connection reset")
		f.apps.On("SetDocumentPath", ctx, "app-1", model.DocOfferLetter, "letters/o.txt").
			Return(connErr).Once()

		err := f.coordinator.SaveDocumentPath(ctx, "app-1", model.DocOfferLetter, "letters/o.txt")

		assert.ErrorIs(t, err, connErr)
		f.apps.AssertNotCalled(t, "ProvisionDocumentColumn", mock.Anything, mock.Anything)
	})
}
