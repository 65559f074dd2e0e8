package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"weighbridge/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns is the export header row, named after the ticket's JSON fields.
var Columns = []string{
	"company_name",
	"product_name",
	"vehicle_number",
	"date",
	"in_time",
	"out_time",
	"total_weight",
	"empty_weight",
	"net_weight",
	"confidence_score",
	"uncertain",
}

// Writer wraps csv.Writer for exporting tickets as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Columns)
}

// WriteTicket writes one ticket as a data row.
func (w *Writer) WriteTicket(t *domain.Ticket) error {
	return w.csv.Write(TicketRow(t))
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteSingle writes BOM, header and one row, then flushes.
func WriteSingle(out io.Writer, t *domain.Ticket) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteTicket(t); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// TicketRow converts a ticket to a row aligned with Columns. Absent fields
// are empty strings.
func TicketRow(t *domain.Ticket) []string {
	return []string{
		formatString(t.CompanyName),
		formatString(t.ProductName),
		formatString(t.VehicleNumber),
		formatString(t.Date),
		formatString(t.InTime),
		formatString(t.OutTime),
		formatInt(t.TotalWeight),
		formatInt(t.EmptyWeight),
		formatInt(t.NetWeight),
		strconv.FormatFloat(t.ConfidenceScore, 'f', -1, 64),
		strconv.FormatBool(t.Uncertain),
	}
}

func formatString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
