package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"weighbridge/internal/csvexport"
	"weighbridge/internal/domain"
)

// SheetName is the worksheet holding the ticket.
const SheetName = "Ticket"

// Write renders the ticket as a workbook with the CSV header row and one
// typed data row: weights are numbers, absent fields are blank cells.
func Write(w io.Writer, t *domain.Ticket) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(csvexport.Columns))
	for i, c := range csvexport.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	row := ticketCells(t)
	if err := f.SetSheetRow(SheetName, "A2", &row); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(csvexport.Columns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", last, 16); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return f.Write(w)
}

func ticketCells(t *domain.Ticket) []interface{} {
	return []interface{}{
		stringCell(t.CompanyName),
		stringCell(t.ProductName),
		stringCell(t.VehicleNumber),
		stringCell(t.Date),
		stringCell(t.InTime),
		stringCell(t.OutTime),
		intCell(t.TotalWeight),
		intCell(t.EmptyWeight),
		intCell(t.NetWeight),
		t.ConfidenceScore,
		t.Uncertain,
	}
}

func stringCell(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func intCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
