package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"smartrecruit/internal/model"
	"smartrecruit/internal/screening"
	"smartrecruit/internal/service"
)

type MockPipelineService struct {
	mock.Mock
}

func (m *MockPipelineService) CreateApplication(ctx context.Context, jobID, candidateID string) (*model.Application, error) {
	args := m.Called(ctx, jobID, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockPipelineService) DeleteApplication(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPipelineService) SetStatus(ctx context.Context, id string, status model.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPipelineService) ScheduleInterview(ctx context.Context, id string, when time.Time) error {
	args := m.Called(ctx, id, when)
	return args.Error(0)
}

func (m *MockPipelineService) MoveToJob(ctx context.Context, id, destJobID string) (*model.Application, error) {
	args := m.Called(ctx, id, destJobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockPipelineService) Rescore(ctx context.Context, id string) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPipelineService) CheckEligibility(ctx context.Context, jobID, resumeText string) (*screening.Assessment, error) {
	args := m.Called(ctx, jobID, resumeText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*screening.Assessment), args.Error(1)
}

func (m *MockPipelineService) AttachDocument(ctx context.Context, id string, kind model.DocumentKind, path string) error {
	args := m.Called(ctx, id, kind, path)
	return args.Error(0)
}

func (m *MockPipelineService) RecordReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Referral), args.Error(1)
}

func (m *MockPipelineService) RecordNote(ctx context.Context, note *model.CandidateNote) (*model.CandidateNote, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CandidateNote), args.Error(1)
}

func (m *MockPipelineService) RecordReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockPipelineService) RecordTeamPost(ctx context.Context, post *model.TeamPost) (*model.TeamPost, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamPost), args.Error(1)
}

func (m *MockPipelineService) Notifications(ctx context.Context, targetID string, limit, offset int) (*service.NotificationListResult, error) {
	args := m.Called(ctx, targetID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NotificationListResult), args.Error(1)
}

func (m *MockPipelineService) MarkNotificationRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ service.PipelineService = (*MockPipelineService)(nil)
