package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ServiceLevel identifies a shipping tier.
type ServiceLevel string

const (
	// ServiceEconomic is the cheapest and slowest tier.
	ServiceEconomic ServiceLevel = "economic"
	// ServiceStandard is priced straight from the region rates.
	ServiceStandard ServiceLevel = "standard"
	// ServiceExpress is the fastest tier.
	ServiceExpress ServiceLevel = "express"
)

// DisplayName returns the customer-facing (Portuguese) tier name.
func (s ServiceLevel) DisplayName() string {
	switch s {
	case ServiceEconomic:
		return "Econômico"
	case ServiceStandard:
		return "Padrão"
	case ServiceExpress:
		return "Expresso"
	default:
		return string(s)
	}
}

var (
	expressMultiplier  = decimal.RequireFromString("1.7")
	economicMultiplier = decimal.RequireFromString("0.7")
)

// ShippingOption is a single priced tier.
type ShippingOption struct {
	Service           ServiceLevel    `json:"service"`
	ServiceName       string          `json:"service_name"`
	Price             decimal.Decimal `json:"price"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	MinDays           int             `json:"min_days"`
	MaxDays           int             `json:"max_days"`
}

// EngineOption customises a RateEngine.
type EngineOption func(*RateEngine)

// WithFreeExpress makes the free-shipping threshold waive the express tier too.
// By default express is always charged.
func WithFreeExpress(enabled bool) EngineOption {
	return func(e *RateEngine) {
		e.freeExpress = enabled
	}
}

// RateEngine prices the three service tiers. It holds only immutable data and is
// safe for concurrent use.
type RateEngine struct {
	rates       RateTable
	freeExpress bool
}

// NewRateEngine validates the table and builds an engine over a private copy of it.
func NewRateEngine(rates RateTable, opts ...EngineOption) (*RateEngine, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	e := &RateEngine{rates: rates.Clone()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// FreeExpress reports whether express is waived above the threshold.
func (e *RateEngine) FreeExpress() bool {
	return e.freeExpress
}

// Fingerprint identifies the pricing policy of the engine: its rate table and
// free-express setting. Quotes priced by engines with equal fingerprints are
// interchangeable.
func (e *RateEngine) Fingerprint() string {
	return fmt.Sprintf("%s-freeexpress=%t", e.rates.Fingerprint(), e.freeExpress)
}

// Rates returns the rates of a region.
func (e *RateEngine) Rates(region Region) (RegionRates, bool) {
	r, ok := e.rates[region]
	return r, ok
}

// ComputeOptions returns the Economic, Standard and Express options, in that order.
func (e *RateEngine) ComputeOptions(region Region, totalWeightKg, orderSubtotal decimal.Decimal) ([]ShippingOption, error) {
	rates, ok := e.rates[region]
	if !ok {
		return nil, fmt.Errorf("%w: no rates for region %q", ErrComputation, region)
	}
	if totalWeightKg.IsNegative() {
		return nil, fmt.Errorf("%w: negative weight %v", ErrComputation, totalWeightKg)
	}

	isFree := orderSubtotal.GreaterThanOrEqual(rates.FreeShippingThreshold)

	charge := rates.BaseFee.Add(totalWeightKg.Mul(rates.PerKgFee))

	standard := charge
	economic := decimal.Max(rates.BaseFee.Mul(economicMultiplier), charge.Mul(economicMultiplier))
	express := charge.Mul(expressMultiplier)

	if isFree {
		standard = decimal.Zero
		economic = decimal.Zero
		if e.freeExpress {
			express = decimal.Zero
		}
	}

	econMin, econMax := rates.MinDays+3, rates.MaxDays+5
	expMin, expMax := max(1, rates.MinDays-1), max(3, rates.MaxDays-2)

	return []ShippingOption{
		newOption(ServiceEconomic, economic, econMin, econMax),
		newOption(ServiceStandard, standard, rates.MinDays, rates.MaxDays),
		newOption(ServiceExpress, express, expMin, expMax),
	}, nil
}

func newOption(level ServiceLevel, price decimal.Decimal, minDays, maxDays int) ShippingOption {
	return ShippingOption{
		Service:           level,
		ServiceName:       level.DisplayName(),
		Price:             price.Round(2),
		EstimatedDelivery: DeliveryDescription(minDays, maxDays),
		MinDays:           minDays,
		MaxDays:           maxDays,
	}
}

// DeliveryDescription formats a business-day range, e.g. "2 a 5 dias úteis".
func DeliveryDescription(minDays, maxDays int) string {
	return fmt.Sprintf("%d a %d dias úteis", minDays, maxDays)
}
