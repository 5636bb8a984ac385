package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ShippingRequest is the input of a quote.
type ShippingRequest struct {
	// Items are the cart lines.
	Items []CartItem `json:"items"`
	// DestinationState is the two-letter state code, matched case-insensitively.
	DestinationState string `json:"state"`
	// PostalCode is accepted for forward compatibility. Pricing does not use it;
	// the state is the only geographic signal.
	PostalCode string `json:"postal_code"`
	// OrderSubtotal is compared against the free-shipping threshold.
	OrderSubtotal decimal.Decimal `json:"total"`
}

// QuoteResult is the output of a quote.
type QuoteResult struct {
	Options       []ShippingOption `json:"options"`
	Region        Region           `json:"region"`
	TotalWeightKg decimal.Decimal  `json:"total_weight_kg"`
	// Unweighted lists products priced with FallbackUnitWeightKg.
	Unweighted []int `json:"-"`
}

// Validate checks the request before any computation.
func (r ShippingRequest) Validate() error {
	if strings.TrimSpace(r.DestinationState) == "" {
		return ErrMissingDestination
	}
	if len(r.Items) == 0 {
		return ErrEmptyCart
	}
	return ValidateItems(r.Items)
}

// Quote resolves the region, aggregates the cart weight and prices the tiers.
func (e *RateEngine) Quote(req ShippingRequest, lookup WeightLookup) (*QuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	region := ResolveRegion(req.DestinationState)

	weight, err := AggregateWeight(req.Items, lookup)
	if err != nil {
		return nil, err
	}

	options, err := e.ComputeOptions(region, weight.TotalKg, req.OrderSubtotal)
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		Options:       options,
		Region:        region,
		TotalWeightKg: weight.TotalKg,
		Unweighted:    weight.Unweighted,
	}, nil
}
