package port

import (
	"context"

	"weighbridge/internal/domain"
)

// TicketParser turns OCR output into a structured weighbridge ticket.
type TicketParser interface {
	Parse(ctx context.Context, input domain.OCRInput) (*domain.Ticket, error)
}

// ParseRecorder observes parse outcomes, e.g. for metrics.
type ParseRecorder interface {
	ObserveTicket(ticket *domain.Ticket, seconds float64)
	ObserveFailure(reason string)
	ObserveRepair(rule string)
}
