package export

import (
	"encoding/json"
	"fmt"
	"io"

	"weighbridge/internal/csvexport"
	"weighbridge/internal/domain"
	"weighbridge/internal/xlsxexport"
)

// Write serializes the ticket in the given format. The original OCR text is
// never included.
func Write(w io.Writer, format domain.ExportFormat, t *domain.Ticket) error {
	out := t.WithoutOriginalText()
	switch format {
	case domain.ExportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case domain.ExportFormatCSV:
		return csvexport.WriteSingle(w, &out)
	case domain.ExportFormatXLSX:
		return xlsxexport.Write(w, &out)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
