package domain

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// FallbackUnitWeightKg is used for products without a known weight.
// It has a direct effect on price, so callers are told which products hit it.
const FallbackUnitWeightKg = 1.0

// MaxUnitWeightKg bounds the unit weight of a single product.
const MaxUnitWeightKg = 1000.0

// CartItem is a single cart line.
type CartItem struct {
	// ProductID identifies the catalog product.
	ProductID int `json:"productId"`
	// Quantity is the number of units, must be positive.
	Quantity int `json:"quantity"`
}

// WeightLookup returns the unit weight in kg of a product and whether it is known.
type WeightLookup func(productID int) (float64, bool)

// WeightTable maps product identifiers to unit weights in kg.
type WeightTable map[int]float64

// DefaultWeightTable returns a fresh copy of the built-in catalog weights.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		1:  0.3,  // camiseta
		2:  0.8,  // calça jeans
		3:  1.2,  // tênis
		4:  0.2,  // boné
		5:  0.5,  // mochila
		6:  2.5,  // jaqueta
		7:  0.15, // meias (par)
		8:  0.4,  // bermuda
		9:  1.5,  // bota
		10: 0.25, // óculos com estojo
	}
}

// Lookup implements WeightLookup.
func (t WeightTable) Lookup(productID int) (float64, bool) {
	w, ok := t[productID]
	return w, ok
}

// WeightSummary is the outcome of aggregating a cart.
type WeightSummary struct {
	// TotalKg is sum(unit weight * quantity), summed exactly.
	TotalKg decimal.Decimal
	// Unweighted lists, sorted and deduplicated, the products priced at FallbackUnitWeightKg.
	Unweighted []int
}

// ValidateItems rejects carts containing non-positive quantities.
func ValidateItems(items []CartItem) error {
	for i, item := range items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: line %d (product %d) has quantity %d", ErrInvalidQuantity, i, item.ProductID, item.Quantity)
		}
	}
	return nil
}

// ValidateUnitWeight rejects negative, non-finite and implausibly large unit weights.
func ValidateUnitWeight(kg float64) error {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return fmt.Errorf("unit weight %v is not finite", kg)
	}
	if kg < 0 || kg > MaxUnitWeightKg {
		return fmt.Errorf("unit weight %v outside 0..%v kg", kg, MaxUnitWeightKg)
	}
	return nil
}

// AggregateWeight sums the weight of all cart lines. A nil lookup treats every
// product as unknown.
func AggregateWeight(items []CartItem, lookup WeightLookup) (WeightSummary, error) {
	if err := ValidateItems(items); err != nil {
		return WeightSummary{}, err
	}

	summary := WeightSummary{TotalKg: decimal.Zero}
	seen := make(map[int]struct{})

	for _, item := range items {
		unit, ok := 0.0, false
		if lookup != nil {
			unit, ok = lookup(item.ProductID)
		}
		if !ok {
			unit = FallbackUnitWeightKg
			if _, dup := seen[item.ProductID]; !dup {
				seen[item.ProductID] = struct{}{}
				summary.Unweighted = append(summary.Unweighted, item.ProductID)
			}
		}
		if err := ValidateUnitWeight(unit); err != nil {
			return WeightSummary{}, fmt.Errorf("%w: product %d: %v", ErrComputation, item.ProductID, err)
		}
		line := decimal.NewFromFloat(unit).Mul(decimal.NewFromInt(int64(item.Quantity)))
		summary.TotalKg = summary.TotalKg.Add(line)
	}

	sort.Ints(summary.Unweighted)
	return summary, nil
}
