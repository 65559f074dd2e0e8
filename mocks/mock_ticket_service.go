package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"weighbridge/internal/domain"
	"weighbridge/internal/service"
)

// MockTicketService is a mock implementation of service.TicketService.
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) ParseUpload(ctx context.Context, input service.UploadInput) (*domain.Ticket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketService) ParseDocument(ctx context.Context, r io.Reader) (*domain.Ticket, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketService) Parse(ctx context.Context, input domain.OCRInput) (*domain.Ticket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketService) Decode(data []byte) (domain.OCRInput, error) {
	args := m.Called(data)
	return args.Get(0).(domain.OCRInput), args.Error(1)
}
