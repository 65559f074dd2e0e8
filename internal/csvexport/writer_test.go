package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 11)
	assert.Equal(t, "company_name", row[0])
	assert.Equal(t, "net_weight", row[8])
	assert.Equal(t, "uncertain", row[10])
}

func TestTicketRow_Full(t *testing.T) {
	ticket := &domain.Ticket{
		CompanyName:     strPtr("(주) 테스트컴퍼니"),
		ProductName:     strPtr("고철"),
		VehicleNumber:   strPtr("3456"),
		Date:            strPtr("2024-03-15"),
		InTime:          strPtr("09:00:00"),
		OutTime:         strPtr("09:30:00"),
		TotalWeight:     intPtr(25000),
		EmptyWeight:     intPtr(10000),
		NetWeight:       intPtr(15000),
		ConfidenceScore: 0.9108,
	}

	assert.Equal(t, []string{
		"(주) 테스트컴퍼니", "고철", "3456", "2024-03-15", "09:00:00", "09:30:00",
		"25000", "10000", "15000", "0.9108", "false",
	}, TicketRow(ticket))
}

func TestTicketRow_AbsentFieldsEmpty(t *testing.T) {
	row := TicketRow(&domain.Ticket{TotalWeight: intPtr(300)})

	assert.Len(t, row, len(Columns))
	assert.Equal(t, "", row[0])
	assert.Equal(t, "300", row[6])
	assert.Equal(t, "", row[7])
	assert.Equal(t, "0", row[9])
}

func TestWriteSingle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSingle(&buf, &domain.Ticket{CompanyName: strPtr("대한, 산업"), NetWeight: intPtr(130)}))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "대한, 산업", rows[1][0])
	assert.Equal(t, "130", rows[1][8])
}
