package mocks

import (
	"github.com/stretchr/testify/mock"

	"weighbridge/internal/domain"
)

// MockParseRecorder is a mock implementation of port.ParseRecorder.
type MockParseRecorder struct {
	mock.Mock
}

func (m *MockParseRecorder) ObserveTicket(ticket *domain.Ticket, seconds float64) {
	m.Called(ticket, seconds)
}

func (m *MockParseRecorder) ObserveFailure(reason string) {
	m.Called(reason)
}

func (m *MockParseRecorder) ObserveRepair(rule string) {
	m.Called(rule)
}
