package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateWeight(t *testing.T) {
	table := WeightTable{1: 0.5, 2: 1.25, 3: 2}

	tests := []struct {
		name       string
		items      []CartItem
		expected   float64
		unweighted []int
	}{
		{name: "Single line", items: []CartItem{{ProductID: 1, Quantity: 4}}, expected: 2},
		{name: "Multiple lines", items: []CartItem{{ProductID: 2, Quantity: 2}, {ProductID: 3, Quantity: 1}}, expected: 4.5},
		{name: "Empty cart", items: nil, expected: 0},
		{
			name:       "Unknown product uses fallback",
			items:      []CartItem{{ProductID: 99, Quantity: 3}, {ProductID: 1, Quantity: 1}, {ProductID: 99, Quantity: 1}},
			expected:   4.5,
			unweighted: []int{99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := AggregateWeight(tt.items, table.Lookup)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromFloat(tt.expected).Equal(summary.TotalKg), summary.TotalKg.String())
			assert.Equal(t, tt.unweighted, summary.Unweighted)
		})
	}
}

func TestAggregateWeight_Linearity(t *testing.T) {
	table := DefaultWeightTable()

	for id, unit := range table {
		summary, err := AggregateWeight([]CartItem{{ProductID: id, Quantity: 7}}, table.Lookup)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(unit).Mul(decimal.NewFromInt(7)).Equal(summary.TotalKg), "product %d", id)
	}
}

func TestAggregateWeight_Additive(t *testing.T) {
	table := DefaultWeightTable()
	a := []CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 6, Quantity: 1}}
	b := []CartItem{{ProductID: 3, Quantity: 3}, {ProductID: 42, Quantity: 2}}

	wa, err := AggregateWeight(a, table.Lookup)
	require.NoError(t, err)
	wb, err := AggregateWeight(b, table.Lookup)
	require.NoError(t, err)
	wab, err := AggregateWeight(append(append([]CartItem{}, a...), b...), table.Lookup)
	require.NoError(t, err)

	assert.True(t, wa.TotalKg.Add(wb.TotalKg).Equal(wab.TotalKg))
}

func TestAggregateWeight_NilLookup(t *testing.T) {
	summary, err := AggregateWeight([]CartItem{{ProductID: 5, Quantity: 2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", summary.TotalKg.String())
	assert.Equal(t, []int{5}, summary.Unweighted)
}

func TestAggregateWeight_InvalidQuantity(t *testing.T) {
	for _, q := range []int{0, -1} {
		_, err := AggregateWeight([]CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: q}}, DefaultWeightTable().Lookup)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestAggregateWeight_ExactSum(t *testing.T) {
	items := []CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 2}, {ProductID: 7, Quantity: 3}}

	summary, err := AggregateWeight(items, DefaultWeightTable().Lookup)
	require.NoError(t, err)
	assert.Equal(t, "1.35", summary.TotalKg.String())
}

func TestAggregateWeight_InvalidUnitWeight(t *testing.T) {
	for _, unit := range []float64{math.Inf(1), math.NaN(), -0.5, MaxUnitWeightKg + 1, 1e308} {
		table := WeightTable{1: unit}
		_, err := AggregateWeight([]CartItem{{ProductID: 1, Quantity: 2}}, table.Lookup)
		assert.ErrorIs(t, err, ErrComputation, "unit %v", unit)
	}
}
