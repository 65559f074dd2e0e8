package domain

// FileType represents the allowed file types for OCR result upload.
type FileType string

const (
	FileTypeJSON FileType = "json"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"json": FileTypeJSON,
}

// ExportFormat is a serialization target for a parsed ticket.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ContentType returns the MIME type served for the export format.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv; charset=utf-8"
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Filename returns the attachment filename used for the export format.
func (f ExportFormat) Filename() string {
	return "weighbridge_ticket." + string(f)
}

// ParseExportFormat maps a user-supplied format name to an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch ExportFormat(s) {
	case ExportFormatJSON, ExportFormatCSV, ExportFormatXLSX:
		return ExportFormat(s), true
	}
	return "", false
}
