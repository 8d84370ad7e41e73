package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, templateID string, tokens map[string]string) (string, error) {
	args := m.Called(ctx, templateID, tokens)
	return args.String(0), args.Error(1)
}
