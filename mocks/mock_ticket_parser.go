package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weighbridge/internal/domain"
)

// MockTicketParser is a mock implementation of port.TicketParser.
type MockTicketParser struct {
	mock.Mock
}

func (m *MockTicketParser) Parse(ctx context.Context, input domain.OCRInput) (*domain.Ticket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}
