package mocks

import (
	"github.com/stretchr/testify/mock"

	"weighbridge/internal/port"
)

// MockEntityRecognizer is a mock implementation of port.EntityRecognizer.
type MockEntityRecognizer struct {
	mock.Mock
}

func (m *MockEntityRecognizer) Recognize(text string) []port.Entity {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]port.Entity)
}
