package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/parser"
)

func TestReconcile_NetMismatch(t *testing.T) {
	tests := []struct {
		name     string
		net      int
		wantNet  int
		repaired bool
	}{
		{"exact", 100, 100, false},
		{"within tolerance", 140, 140, false},
		{"at tolerance", 150, 150, false},
		{"just over tolerance", 151, 100, true},
		{"far off", 40, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, repairs := parser.Reconcile(parser.Weights{Total: intPtr(200), Empty: intPtr(100), Net: intPtr(tt.net)})
			require.NotNil(t, w.Net)
			assert.Equal(t, tt.wantNet, *w.Net)
			if !tt.repaired {
				assert.Empty(t, repairs)
				return
			}
			require.Len(t, repairs, 1)
			assert.Equal(t, "weight.net_mismatch", repairs[0].Rule)
			assert.Equal(t, "net_weight", repairs[0].Field)
			require.NotNil(t, repairs[0].From)
			assert.Equal(t, tt.net, *repairs[0].From)
			assert.Equal(t, 100, repairs[0].To)
		})
	}
}

func TestReconcile_DeriveMissing(t *testing.T) {
	t.Run("net", func(t *testing.T) {
		w, repairs := parser.Reconcile(parser.Weights{Total: intPtr(300), Empty: intPtr(100)})
		assert.Equal(t, intPtr(200), w.Net)
		require.Len(t, repairs, 1)
		assert.Equal(t, "weight.derive_net", repairs[0].Rule)
		assert.Nil(t, repairs[0].From)
	})

	t.Run("empty", func(t *testing.T) {
		w, repairs := parser.Reconcile(parser.Weights{Total: intPtr(300), Net: intPtr(200)})
		assert.Equal(t, intPtr(100), w.Empty)
		require.Len(t, repairs, 1)
		assert.Equal(t, "weight.derive_empty", repairs[0].Rule)
	})

	t.Run("total", func(t *testing.T) {
		w, repairs := parser.Reconcile(parser.Weights{Empty: intPtr(100), Net: intPtr(200)})
		assert.Equal(t, intPtr(300), w.Total)
		require.Len(t, repairs, 1)
		assert.Equal(t, "weight.derive_total", repairs[0].Rule)
	})

	t.Run("single reading left alone", func(t *testing.T) {
		w, repairs := parser.Reconcile(parser.Weights{Total: intPtr(300)})
		assert.Equal(t, intPtr(300), w.Total)
		assert.Nil(t, w.Empty)
		assert.Nil(t, w.Net)
		assert.Empty(t, repairs)
	})
}

func TestRepair_String(t *testing.T) {
	from := 40
	assert.Equal(t, "weight.net_mismatch: net_weight corrected from 40 to 100",
		parser.Repair{Rule: "weight.net_mismatch", Field: "net_weight", From: &from, To: 100}.String())
	assert.Equal(t, "weight.derive_total: total_weight derived as 300",
		parser.Repair{Rule: "weight.derive_total", Field: "total_weight", To: 300}.String())
}
