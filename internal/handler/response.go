package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weighbridge/internal/domain"
	"weighbridge/internal/logger"
)

// Status codes carried in the envelope's status_code field.
const (
	CodeSuccess          = "SUCCESS"
	CodeInvalidRequest   = "ERR_400"
	CodeNotFound         = "ERR_404"
	CodeMethodNotAllowed = "ERR_405"
	CodeValidation       = "ERR_422"
	CodeInternal         = "ERR_500"
	CodeInvalidExtension = "FILE_001"
	CodeInvalidJSON      = "FILE_002"
	CodeFileTooLarge     = "FILE_003"
	CodeOCRDataEmpty     = "OCR_001"
)

// Envelope messages.
const (
	MsgSuccess          = "Request successful"
	MsgInvalidRequest   = "잘못된 요청입니다."
	MsgNotFound         = "리소스를 찾을 수 없습니다."
	MsgMethodNotAllowed = "허용되지 않는 HTTP 메서드입니다."
	MsgValidation       = "유효성 검사에 실패했습니다."
	MsgInternal         = "서버 내부 오류가 발생했습니다."
	MsgInvalidExtension = "지원하지 않는 파일 형식입니다. (.json 파일만 가능)"
	MsgInvalidJSON      = "유효하지 않은 JSON 형식입니다."
	MsgFileTooLarge     = "파일 크기가 허용된 최대 크기를 초과했습니다."
	MsgOCRDataEmpty     = "OCR 데이터 내에서 유효한 텍스트를 찾을 수 없습니다."
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode string      `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// ValidationDetails is the data payload of an ERR_422 response.
type ValidationDetails struct {
	Details []domain.FieldError `json:"details"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		StatusCode: CodeSuccess,
		Message:    MsgSuccess,
		Data:       data,
	})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	RespondErrorData(c, status, code, msg, nil)
}

// RespondErrorData sends an error response carrying a data payload.
func RespondErrorData(c *gin.Context, status int, code, msg string, data interface{}) {
	c.JSON(status, APIResponse{
		Success:    false,
		StatusCode: code,
		Message:    msg,
		Data:       data,
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidFileExtension):
		return http.StatusBadRequest, CodeInvalidExtension, MsgInvalidExtension
	case errors.Is(err, domain.ErrInvalidJSONFormat):
		return http.StatusBadRequest, CodeInvalidJSON, MsgInvalidJSON
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, CodeFileTooLarge, MsgFileTooLarge
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequest
	case errors.Is(err, domain.ErrOCRDataEmpty):
		return http.StatusBadRequest, CodeOCRDataEmpty, MsgOCRDataEmpty
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, CodeValidation, MsgValidation
	default:
		return http.StatusInternalServerError, CodeInternal, MsgInternal
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Validation failures carry their field details; the message names the first.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	log := logger.FromContext(c.Request.Context()).WithField("path", c.Request.URL.Path)

	var data interface{}
	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Details) > 0 {
		msg = verr.Details[0].Field + ": " + verr.Details[0].Message
		data = ValidationDetails{Details: verr.Details}
	}

	if status >= 500 {
		log.WithError(err).Error("internal error")
	} else {
		log.WithField("status_code", code).Warnf("request rejected: %v", err)
	}
	RespondErrorData(c, status, code, msg, data)
}
