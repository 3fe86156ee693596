package uniquename_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRegistry is a mock implementation of Registry.
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Contains(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
