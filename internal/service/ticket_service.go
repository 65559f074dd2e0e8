package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"weighbridge/internal/domain"
	"weighbridge/internal/logger"
	"weighbridge/internal/port"
)

// UploadInput is an uploaded OCR result file.
type UploadInput struct {
	Filename string
	Size     int64 // -1 when unknown
	Content  io.Reader
}

// TicketService validates OCR results and parses them into tickets.
type TicketService interface {
	ParseUpload(ctx context.Context, input UploadInput) (*domain.Ticket, error)
	ParseDocument(ctx context.Context, r io.Reader) (*domain.Ticket, error)
	Parse(ctx context.Context, input domain.OCRInput) (*domain.Ticket, error)
	Decode(data []byte) (domain.OCRInput, error)
}

type ticketService struct {
	parser   port.TicketParser
	validate *validator.Validate
	maxBytes int64
}

// NewTicketService creates a TicketService. maxBytes <= 0 disables the size check.
func NewTicketService(parser port.TicketParser, maxBytes int64) TicketService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &ticketService{
		parser:   parser,
		validate: v,
		maxBytes: maxBytes,
	}
}

func (s *ticketService) ParseUpload(ctx context.Context, input UploadInput) (*domain.Ticket, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrInvalidFileExtension
	}
	if s.maxBytes > 0 && input.Size > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	log.WithField("filename", input.Filename).Info("ticketService.ParseUpload: parsing uploaded OCR result")
	return s.ParseDocument(ctx, input.Content)
}

// ParseDocument reads, decodes and parses one OCR result JSON document.
func (s *ticketService) ParseDocument(ctx context.Context, r io.Reader) (*domain.Ticket, error) {
	if s.maxBytes > 0 {
		r = io.LimitReader(r, s.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	logger.FromContext(ctx).WithField("bytes", len(data)).Debug("ticketService.ParseDocument: decoding OCR result")

	ocr, err := s.Decode(data)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, ocr)
}

// Decode unmarshals and schema-validates an OCR result document.
func (s *ticketService) Decode(data []byte) (domain.OCRInput, error) {
	var ocr domain.OCRInput
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&ocr); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return ocr, &domain.ValidationError{Details: []domain.FieldError{{
				Field:   typeErr.Field,
				Rule:    "type",
				Message: fmt.Sprintf("must be %s", typeErr.Type),
			}}}
		}
		return ocr, fmt.Errorf("%w: %v", domain.ErrInvalidJSONFormat, err)
	}
	if dec.More() {
		return ocr, fmt.Errorf("%w: trailing data after document", domain.ErrInvalidJSONFormat)
	}
	if err := s.validate.Struct(ocr); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ocr, toValidationError(verrs)
		}
		return ocr, fmt.Errorf("validating OCR input: %w", err)
	}
	return ocr, nil
}

func (s *ticketService) Parse(ctx context.Context, input domain.OCRInput) (*domain.Ticket, error) {
	ticket, err := s.parser.Parse(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrOCRDataEmpty) {
			return nil, err
		}
		return nil, fmt.Errorf("parsing ticket: %w", err)
	}
	return ticket, nil
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func toValidationError(verrs validator.ValidationErrors) *domain.ValidationError {
	out := &domain.ValidationError{Details: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		out.Details = append(out.Details, domain.FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
