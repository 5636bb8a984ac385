package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateEngine_Quote(t *testing.T) {
	engine := newTestEngine(t)
	table := WeightTable{10: 1.5}

	req := ShippingRequest{
		Items:            []CartItem{{ProductID: 10, Quantity: 2}},
		DestinationState: "sp",
		PostalCode:       "01310-100",
		OrderSubtotal:    decimal.NewFromInt(500),
	}

	result, err := engine.Quote(req, table.Lookup)
	require.NoError(t, err)

	assert.Equal(t, RegionSoutheast, result.Region)
	assert.Equal(t, "3", result.TotalWeightKg.String())
	assert.Equal(t, []string{"16.52", "23.60", "40.12"}, prices(result.Options))
	assert.Empty(t, result.Unweighted)
}

func TestRateEngine_Quote_Idempotent(t *testing.T) {
	engine := newTestEngine(t)
	req := ShippingRequest{
		Items:            []CartItem{{ProductID: 1, Quantity: 3}, {ProductID: 77, Quantity: 1}},
		DestinationState: "PE",
		OrderSubtotal:    decimal.RequireFromString("149.90"),
	}

	first, err := engine.Quote(req, DefaultWeightTable().Lookup)
	require.NoError(t, err)
	second, err := engine.Quote(req, DefaultWeightTable().Lookup)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{77}, first.Unweighted)
}

func TestRateEngine_Quote_PostalCodeIgnored(t *testing.T) {
	engine := newTestEngine(t)
	base := ShippingRequest{
		Items:            []CartItem{{ProductID: 2, Quantity: 1}},
		DestinationState: "RS",
		PostalCode:       "90010-000",
	}
	other := base
	other.PostalCode = "69005-000"

	a, err := engine.Quote(base, DefaultWeightTable().Lookup)
	require.NoError(t, err)
	b, err := engine.Quote(other, DefaultWeightTable().Lookup)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRateEngine_Quote_ValidationErrors(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		req      ShippingRequest
		expected error
	}{
		{
			name:     "MissingDestination",
			req:      ShippingRequest{Items: []CartItem{{ProductID: 1, Quantity: 1}}, DestinationState: "  "},
			expected: ErrMissingDestination,
		},
		{
			name:     "EmptyCart",
			req:      ShippingRequest{DestinationState: "SP"},
			expected: ErrEmptyCart,
		},
		{
			name:     "ZeroQuantity",
			req:      ShippingRequest{Items: []CartItem{{ProductID: 1, Quantity: 0}}, DestinationState: "SP"},
			expected: ErrInvalidQuantity,
		},
		{
			name:     "NegativeQuantity",
			req:      ShippingRequest{Items: []CartItem{{ProductID: 1, Quantity: -2}}, DestinationState: "SP"},
			expected: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Quote(tt.req, DefaultWeightTable().Lookup)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, result)
		})
	}
}
