package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"smartrecruit/internal/model"
	"smartrecruit/internal/screening"
)

type MockReviewer struct {
	mock.Mock
}

func (m *MockReviewer) Evaluate(ctx context.Context, job *model.Job, resumeText string) (*screening.Assessment, error) {
	args := m.Called(ctx, job, resumeText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*screening.Assessment), args.Error(1)
}
