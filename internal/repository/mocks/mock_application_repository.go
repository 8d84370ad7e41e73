package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"smartrecruit/internal/model"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (model.Status, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.Status), args.Error(1)
}

func (m *MockApplicationRepository) UpdateScore(ctx context.Context, id string, score float64) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}

func (m *MockApplicationRepository) ScheduleInterview(ctx context.Context, id string, when time.Time) (model.Status, error) {
	args := m.Called(ctx, id, when)
	return args.Get(0).(model.Status), args.Error(1)
}

func (m *MockApplicationRepository) MoveToJob(ctx context.Context, id, destJobID, newID string) (*model.Application, error) {
	args := m.Called(ctx, id, destJobID, newID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplicationRepository) SetDocumentPath(ctx context.Context, id string, kind model.DocumentKind, path string) error {
	args := m.Called(ctx, id, kind, path)
	return args.Error(0)
}

func (m *MockApplicationRepository) ProvisionDocumentColumn(ctx context.Context, kind model.DocumentKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}
