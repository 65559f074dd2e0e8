package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"weighbridge/internal/domain"
	"weighbridge/internal/export"
	"weighbridge/internal/service"
)

// OCRHandler handles OCR result parsing and export endpoints.
type OCRHandler struct {
	ticketService service.TicketService
}

// NewOCRHandler creates a new OCRHandler.
func NewOCRHandler(ticketService service.TicketService) *OCRHandler {
	return &OCRHandler{ticketService: ticketService}
}

// UploadOCR handles POST /api/v1/ocr/upload-ocr
// @Summary Parse an uploaded OCR result file
// @Description Upload an OCR result `.json` file and extract the weighbridge ticket fields.
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "OCR result JSON file"
// @Success 200 {object} Response{data=TicketResponse} "Parsed ticket"
// @Failure 400 {object} ErrorResponseBody "Missing file, wrong extension, invalid JSON or no usable text"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "OCR document failed schema validation"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /ocr/upload-ocr [post]
func (h *OCRHandler) UploadOCR(c *gin.Context) {
	ticket, ok := h.parseUpload(c)
	if !ok {
		return
	}
	RespondOK(c, NewTicketResponse(ticket))
}

// Parse handles POST /api/v1/ocr/parse
// @Summary Parse an OCR result document
// @Description Parse an OCR result sent as the raw JSON request body.
// @Tags ocr
// @Accept json
// @Produce json
// @Param request body OCRRequest true "OCR result"
// @Success 200 {object} Response{data=TicketResponse} "Parsed ticket"
// @Failure 400 {object} ErrorResponseBody "Invalid JSON or no usable text"
// @Failure 413 {object} ErrorResponseBody "Body too large"
// @Failure 422 {object} ErrorResponseBody "OCR document failed schema validation"
// @Router /ocr/parse [post]
func (h *OCRHandler) Parse(c *gin.Context) {
	ticket, err := h.ticketService.ParseDocument(c.Request.Context(), c.Request.Body)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, NewTicketResponse(ticket))
}

// ExportCSV handles POST /api/v1/ocr/export/csv
// @Summary Parse an OCR result file and download CSV
// @Description Returns a UTF-8 CSV (with BOM) holding a header row and one ticket row.
// @Tags ocr
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "OCR result JSON file"
// @Success 200 {file} file "weighbridge_ticket.csv"
// @Failure 400 {object} ErrorResponseBody "Missing file, wrong extension, invalid JSON or no usable text"
// @Failure 422 {object} ErrorResponseBody "OCR document failed schema validation"
// @Router /ocr/export/csv [post]
func (h *OCRHandler) ExportCSV(c *gin.Context) {
	h.export(c, domain.ExportFormatCSV)
}

// ExportJSON handles POST /api/v1/ocr/export/json
// @Summary Parse an OCR result file and download JSON
// @Description Returns the ticket as an indented JSON file; absent fields are omitted.
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "OCR result JSON file"
// @Success 200 {file} file "weighbridge_ticket.json"
// @Failure 400 {object} ErrorResponseBody "Missing file, wrong extension, invalid JSON or no usable text"
// @Failure 422 {object} ErrorResponseBody "OCR document failed schema validation"
// @Router /ocr/export/json [post]
func (h *OCRHandler) ExportJSON(c *gin.Context) {
	h.export(c, domain.ExportFormatJSON)
}

// ExportXLSX handles POST /api/v1/ocr/export/xlsx
// @Summary Parse an OCR result file and download an Excel workbook
// @Tags ocr
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "OCR result JSON file"
// @Success 200 {file} file "weighbridge_ticket.xlsx"
// @Failure 400 {object} ErrorResponseBody "Missing file, wrong extension, invalid JSON or no usable text"
// @Failure 422 {object} ErrorResponseBody "OCR document failed schema validation"
// @Router /ocr/export/xlsx [post]
func (h *OCRHandler) ExportXLSX(c *gin.Context) {
	h.export(c, domain.ExportFormatXLSX)
}

func (h *OCRHandler) export(c *gin.Context, format domain.ExportFormat) {
	ticket, ok := h.parseUpload(c)
	if !ok {
		return
	}

	// Render fully before writing so a failure can still produce an envelope.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, ticket); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+format.Filename())
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// parseUpload reads the multipart "file" field and parses it. On failure the
// error response is already written.
func (h *OCRHandler) parseUpload(c *gin.Context) (*domain.Ticket, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return nil, false
	}
	defer func() { _ = file.Close() }()

	ticket, err := h.ticketService.ParseUpload(c.Request.Context(), service.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return ticket, true
}
