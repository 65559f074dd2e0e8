package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/parser"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"dashes", "계량일자 : 2024-03-15", "2024-03-15", true},
		{"slashes", "2024/03/15 발행", "2024-03-15", true},
		{"dots", "일자 2024.03.15", "2024-03-15", true},
		{"dash form preferred", "2024.01.01 / 2024-02-02", "2024-02-02", true},
		{"ranges not checked", "2024-13-45", "2024-13-45", true},
		{"none", "날짜 없음", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ExtractDate(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTimes(t *testing.T) {
	t.Run("padding and default seconds", func(t *testing.T) {
		assert.Equal(t, []string{"09:05:00"}, parser.ExtractTimes("입고 9:05"))
	})

	t.Run("spaces around colons", func(t *testing.T) {
		assert.Equal(t, []string{"14:30:15"}, parser.ExtractTimes("출고 14 : 30 : 15"))
	})

	t.Run("korean form merged and deduplicated", func(t *testing.T) {
		got := parser.ExtractTimes("11시 40분 ... 11:40 ... 9시 5분")
		assert.Equal(t, []string{"09:05:00", "11:40:00"}, got)
	})

	t.Run("sorted ascending", func(t *testing.T) {
		got := parser.ExtractTimes("11:30:00\n11:00:00\n11:15:00")
		assert.Equal(t, []string{"11:00:00", "11:15:00", "11:30:00"}, got)
	})

	t.Run("none", func(t *testing.T) {
		assert.Empty(t, parser.ExtractTimes("시간 정보 없음"))
	})
}

func TestAssignInOut(t *testing.T) {
	in, out := parser.AssignInOut(nil)
	assert.Nil(t, in)
	assert.Nil(t, out)

	in, out = parser.AssignInOut([]string{"09:00:00"})
	require.NotNil(t, in)
	assert.Equal(t, "09:00:00", *in)
	assert.Nil(t, out)

	in, out = parser.AssignInOut([]string{"11:00:00", "11:15:00", "11:30:00"})
	require.NotNil(t, in)
	require.NotNil(t, out)
	assert.Equal(t, "11:00:00", *in)
	assert.Equal(t, "11:30:00", *out)
}
