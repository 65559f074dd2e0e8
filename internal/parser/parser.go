package parser

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"weighbridge/internal/domain"
	"weighbridge/internal/logger"
	"weighbridge/internal/port"
)

// Parser extracts weighbridge ticket fields from OCR text. It holds no
// per-call state and is safe for concurrent use when its recognizer is.
type Parser struct {
	recognizer port.EntityRecognizer
	recorder   port.ParseRecorder
	companies  []Strategy[string]
}

// Option configures a Parser.
type Option func(*Parser)

// WithRecognizer enables the named-entity company fallback.
func WithRecognizer(r port.EntityRecognizer) Option {
	return func(p *Parser) { p.recognizer = r }
}

// WithRecorder reports parse outcomes to r.
func WithRecorder(r port.ParseRecorder) Option {
	return func(p *Parser) { p.recorder = r }
}

// New builds a Parser. Without options it runs the label and pattern
// strategies only.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.companies = []Strategy[string]{
		labeledCompany,
		markedCompany,
		recognizedCompany(p.recognizer),
	}
	return p
}

var _ port.TicketParser = (*Parser)(nil)

// Parse extracts a Ticket from input.Text. It fails only with
// domain.ErrOCRDataEmpty when the text is blank; every other field that
// cannot be read is left nil.
func (p *Parser) Parse(ctx context.Context, input domain.OCRInput) (*domain.Ticket, error) {
	start := time.Now()
	text := input.Text
	if strings.TrimSpace(text) == "" {
		if p.recorder != nil {
			p.recorder.ObserveFailure("empty_text")
		}
		return nil, domain.ErrOCRDataEmpty
	}

	log := logger.FromContext(ctx)
	log.WithField("text_length", len(text)).Debug("parsing ticket text")

	weights := ExtractLabeledWeights(text)
	if !weights.complete() {
		candidates := WeightCandidates(text)
		log.WithFields(logrus.Fields{
			"candidates": len(candidates),
		}).Info("label-based weights incomplete, ranking unlabelled readings")
		weights = FillByRank(weights, candidates)
	}

	ticket := &domain.Ticket{
		ConfidenceScore: input.Confidence,
		OriginalText:    text,
	}
	ticket.Date = optional[string](ExtractDate(text))
	ticket.InTime, ticket.OutTime = AssignInOut(ExtractTimes(text))
	ticket.VehicleNumber = optional[string](ExtractVehicleNumber(text))
	ticket.CompanyName = optional[string](firstMatch(text, p.companies...))
	ticket.ProductName = optional[string](ExtractProduct(text))

	weights, repairs := Reconcile(weights)
	for _, r := range repairs {
		entry := log.WithFields(logrus.Fields{
			"rule":  r.Rule,
			"field": r.Field,
			"to":    r.To,
		})
		if r.From != nil {
			entry = entry.WithField("from", *r.From)
		}
		entry.Warn("weight repaired")
		if p.recorder != nil {
			p.recorder.ObserveRepair(r.Rule)
		}
	}
	ticket.TotalWeight = weights.Total
	ticket.EmptyWeight = weights.Empty
	ticket.NetWeight = weights.Net

	if p.recorder != nil {
		p.recorder.ObserveTicket(ticket, time.Since(start).Seconds())
	}
	return ticket, nil
}
