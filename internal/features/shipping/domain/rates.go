package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// RegionRates holds the pricing inputs for a single region.
type RegionRates struct {
	// BaseFee is charged once per shipment regardless of weight.
	BaseFee decimal.Decimal `json:"base_fee"`
	// PerKgFee is multiplied by the aggregated cart weight.
	PerKgFee decimal.Decimal `json:"per_kg_fee"`
	// FreeShippingThreshold is the subtotal from which shipping is waived.
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
	// MinDays is the lower bound of the standard delivery estimate, in business days.
	MinDays int `json:"min_days"`
	// MaxDays is the upper bound of the standard delivery estimate, in business days.
	MaxDays int `json:"max_days"`
}

// Validate checks the invariants of a single rate entry.
func (r RegionRates) Validate() error {
	if r.BaseFee.IsNegative() || r.PerKgFee.IsNegative() || r.FreeShippingThreshold.IsNegative() {
		return fmt.Errorf("fees must not be negative")
	}
	if r.MinDays < 0 || r.MinDays > r.MaxDays {
		return fmt.Errorf("invalid delivery range %d..%d", r.MinDays, r.MaxDays)
	}
	return nil
}

// RateTable maps every region to its rates.
type RateTable map[Region]RegionRates

// DefaultRateTable returns a fresh copy of the built-in rates.
func DefaultRateTable() RateTable {
	return RateTable{
		RegionNorth:      newRates("35", "2.5", "1200", 7, 15),
		RegionNortheast:  newRates("30", "2", "1000", 5, 12),
		RegionCenterWest: newRates("25", "1.8", "900", 4, 10),
		RegionSoutheast:  newRates("20", "1.2", "800", 2, 5),
		RegionSouth:      newRates("22", "1.5", "850", 3, 7),
	}
}

func newRates(base, perKg, threshold string, minDays, maxDays int) RegionRates {
	return RegionRates{
		BaseFee:               decimal.RequireFromString(base),
		PerKgFee:              decimal.RequireFromString(perKg),
		FreeShippingThreshold: decimal.RequireFromString(threshold),
		MinDays:               minDays,
		MaxDays:               maxDays,
	}
}

// Validate ensures every region has a valid entry.
func (t RateTable) Validate() error {
	for _, region := range Regions() {
		rates, ok := t[region]
		if !ok {
			return fmt.Errorf("%w: no rates for region %s", ErrComputation, region)
		}
		if err := rates.Validate(); err != nil {
			return fmt.Errorf("%w: region %s: %v", ErrComputation, region, err)
		}
	}
	return nil
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Fingerprint is a short hash of the table contents. Tables with equal rates
// have equal fingerprints regardless of how the decimals were written.
func (t RateTable) Fingerprint() string {
	var b strings.Builder
	for _, region := range Regions() {
		r, ok := t[region]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s|%s|%s|%s|%d|%d;", region,
			r.BaseFee.String(), r.PerKgFee.String(), r.FreeShippingThreshold.String(),
			r.MinDays, r.MaxDays)
	}
	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}
