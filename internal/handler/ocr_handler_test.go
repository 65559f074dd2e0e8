package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/csvexport"
	"weighbridge/internal/domain"
	"weighbridge/internal/handler"
	"weighbridge/internal/service"
	"weighbridge/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func sampleTicket() *domain.Ticket {
	return &domain.Ticket{
		CompanyName:     strPtr("정우리사이클링"),
		TotalWeight:     intPtr(14080),
		EmptyWeight:     intPtr(13950),
		NetWeight:       intPtr(130),
		ConfidenceScore: 0.91,
		OriginalText:    "총중량 : 14,080 kg",
	}
}

func multipartRequest(t *testing.T, path, filename, content string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (handler.APIResponse, map[string]interface{}) {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]interface{})
	return resp, data
}

func TestOCRHandler_UploadOCR_Success(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)

	mockSvc.On("ParseUpload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
		return in.Filename == "ticket.json" && in.Size == int64(len(`{"text":"x"}`))
	})).Return(sampleTicket(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/ocr/upload-ocr", "ticket.json", `{"text":"x"}`)

	h.UploadOCR(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp, data := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, handler.CodeSuccess, resp.StatusCode)
	assert.Equal(t, handler.MsgSuccess, resp.Message)
	assert.Equal(t, "정우리사이클링", data["company_name"])
	assert.Equal(t, float64(130), data["net_weight"])

	// absent fields are present as null, the OCR text is never echoed
	v, ok := data["product_name"]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.NotContains(t, data, "original_text")
	assert.Equal(t, false, data["uncertain"])
	mockSvc.AssertExpectations(t)
}

func TestOCRHandler_UploadOCR_NoFile(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/ocr/upload-ocr", nil)

	h.UploadOCR(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp, _ := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, handler.CodeInvalidRequest, resp.StatusCode)
	mockSvc.AssertNotCalled(t, "ParseUpload", mock.Anything, mock.Anything)
}

func TestOCRHandler_UploadOCR_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"extension", domain.ErrInvalidFileExtension, http.StatusBadRequest, handler.CodeInvalidExtension, handler.MsgInvalidExtension},
		{"invalid json", domain.ErrInvalidJSONFormat, http.StatusBadRequest, handler.CodeInvalidJSON, handler.MsgInvalidJSON},
		{"too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, handler.CodeFileTooLarge, handler.MsgFileTooLarge},
		{"empty text", domain.ErrOCRDataEmpty, http.StatusBadRequest, handler.CodeOCRDataEmpty, handler.MsgOCRDataEmpty},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, handler.CodeInternal, handler.MsgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mocks.MockTicketService)
			h := handler.NewOCRHandler(mockSvc)
			mockSvc.On("ParseUpload", mock.Anything, mock.AnythingOfType("service.UploadInput")).Return(nil, tt.err)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = multipartRequest(t, "/api/v1/ocr/upload-ocr", "ticket.json", `{}`)

			h.UploadOCR(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp, _ := decodeEnvelope(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestOCRHandler_UploadOCR_ValidationDetails(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseUpload", mock.Anything, mock.Anything).Return(nil, &domain.ValidationError{
		Details: []domain.FieldError{{Field: "confidence", Rule: "lte", Message: "must be less than or equal to 1"}},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/ocr/upload-ocr", "ticket.json", `{}`)

	h.UploadOCR(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp, data := decodeEnvelope(t, w)
	assert.Equal(t, handler.CodeValidation, resp.StatusCode)
	assert.Equal(t, "confidence: must be less than or equal to 1", resp.Message)
	details, ok := data["details"].([]interface{})
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "lte", details[0].(map[string]interface{})["rule"])
}

func TestOCRHandler_Parse_RawBody(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseDocument", mock.Anything, mock.Anything).Return(sampleTicket(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/ocr/parse", strings.NewReader(`{"text":"x"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Parse(c)

	assert.Equal(t, http.StatusOK, w.Code)
	_, data := decodeEnvelope(t, w)
	assert.Equal(t, float64(14080), data["total_weight"])
	mockSvc.AssertExpectations(t)
}

func TestOCRHandler_Parse_EmptyText(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseDocument", mock.Anything, mock.Anything).Return(nil, domain.ErrOCRDataEmpty)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/ocr/parse", strings.NewReader(`{"text":""}`))

	h.Parse(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp, _ := decodeEnvelope(t, w)
	assert.Equal(t, handler.CodeOCRDataEmpty, resp.StatusCode)
}

func TestOCRHandler_ExportCSV(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseUpload", mock.Anything, mock.Anything).Return(sampleTicket(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/ocr/export/csv", "ticket.json", `{}`)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=weighbridge_ticket.csv", w.Header().Get("Content-Disposition"))

	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, csvexport.BOM))
	lines := strings.Split(strings.TrimSpace(string(body[len(csvexport.BOM):])), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvexport.Columns, ","), lines[0])
	assert.Equal(t, "정우리사이클링,,,,,,14080,13950,130,0.91,false", lines[1])
}

func TestOCRHandler_ExportJSON(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseUpload", mock.Anything, mock.Anything).Return(sampleTicket(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/ocr/export/json", "ticket.json", `{}`)

	h.ExportJSON(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=weighbridge_ticket.json", w.Header().Get("Content-Disposition"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "정우리사이클링", got["company_name"])
	assert.NotContains(t, got, "product_name")
	assert.NotContains(t, got, "original_text")
	assert.Contains(t, w.Body.String(), "\n  \"company_name\"")
}

func TestOCRHandler_ExportXLSX(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseUpload", mock.Anything, mock.Anything).Return(sampleTicket(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/ocr/export/xlsx", "ticket.json", `{}`)

	h.ExportXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ExportFormatXLSX.ContentType(), w.Header().Get("Content-Type"))
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestOCRHandler_Export_ErrorIsEnvelope(t *testing.T) {
	mockSvc := new(mocks.MockTicketService)
	h := handler.NewOCRHandler(mockSvc)
	mockSvc.On("ParseUpload", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidFileExtension)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/ocr/export/csv", "ticket.txt", `{}`)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	resp, _ := decodeEnvelope(t, w)
	assert.Equal(t, handler.CodeInvalidExtension, resp.StatusCode)
}
