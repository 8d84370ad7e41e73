package screening

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smartrecruit/internal/model"
)

type mockReviewer struct {
	mock.Mock
}

func (m *mockReviewer) Evaluate(ctx context.Context, job *model.Job, resumeText string) (*Assessment, error) {
	args := m.Called(ctx, job, resumeText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Assessment), args.Error(1)
}

func TestGate_Check(t *testing.T) {
	ctx := context.Background()
	job := &model.Job{ID: "job-1", Title: "Senior Backend Engineer"}

	t.Run("fails open when reviewer not configured", func(t *testing.T) {
		gate := NewGate(nil, nil)

		res, err := gate.Check(ctx, job, "resume text")

		assert.NoError(t, err)
		assert.True(t, res.Eligible)
		assert.Equal(t, 50, res.Score)
		assert.Contains(t, res.Reasons[0], "not configured")
	})

	t.Run("admits at threshold", func(t *testing.T) {
		rev := new(mockReviewer)
		rev.On("Evaluate", ctx, job, "resume").
			Return(&Assessment{Score: 50, Eligible: false}, nil).Once()
		gate := NewGate(rev, nil)

		res, err := gate.Check(ctx, job, "resume")

		assert.NoError(t, err)
		assert.True(t, res.Eligible)
		rev.AssertExpectations(t)
	})

	t.Run("rejects below threshold even when reviewer says eligible", func(t *testing.T) {
		rev := new(mockReviewer)
		rev.On("Evaluate", ctx, job, "resume").
			Return(&Assessment{Score: 49, Eligible: true}, nil).Once()
		gate := NewGate(rev, nil)

		res, err := gate.Check(ctx, job, "resume")

		assert.NoError(t, err)
		assert.False(t, res.Eligible)
		rev.AssertExpectations(t)
	})

	t.Run("malformed reviewer output is surfaced not defaulted", func(t *testing.T) {
		rev := new(mockReviewer)
		rev.On("Evaluate", ctx, job, "resume").
			Return(nil, ErrUpstreamFormat).Once()
		gate := NewGate(rev, nil)

		res, err := gate.Check(ctx, job, "resume")

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrUpstreamFormat)
	})

	t.Run("transport errors are surfaced", func(t *testing.T) {
		rev := new(mockReviewer)
		rev.On("Evaluate", ctx, job, "resume").
			Return(nil, errors.New("timeout")).Once()
		gate := NewGate(rev, nil)

		res, err := gate.Check(ctx, job, "resume")

		assert.Nil(t, res)
		assert.Error(t, err)
	})
}
