package domain

import "errors"

var (
	ErrOCRDataEmpty         = errors.New("no usable text found in OCR data")
	ErrInvalidFileExtension = errors.New("unsupported file extension")
	ErrInvalidJSONFormat    = errors.New("invalid JSON format")
	ErrValidation           = errors.New("validation failed")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrMissingFile          = errors.New("file field is required")
)

// FieldError describes one failed schema constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries per-field schema failures. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + e.Details[0].Field + ": " + e.Details[0].Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
