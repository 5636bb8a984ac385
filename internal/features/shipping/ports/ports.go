package ports

import (
	"context"
	"time"

	"frete-service/internal/features/shipping/domain"
)

// WeightSourceKind names where a unit weight came from.
type WeightSourceKind string

const (
	WeightSourceOverride WeightSourceKind = "override"
	WeightSourceCatalog  WeightSourceKind = "catalog"
	WeightSourceTable    WeightSourceKind = "table"
	WeightSourceFallback WeightSourceKind = "fallback"
)

// ProductWeight is a resolved unit weight.
type ProductWeight struct {
	ProductID int              `json:"productId"`
	WeightKg  float64          `json:"weightKg"`
	Source    WeightSourceKind `json:"source"`
}

// ShippingService defines the primary port used by the HTTP handler.
type ShippingService interface {
	QuoteShipping(ctx context.Context, req domain.ShippingRequest) (*domain.QuoteResult, error)
	ResolveRegion(state string) domain.Region
	GetProductWeight(ctx context.Context, productID int) (*ProductWeight, error)
	SetProductWeight(ctx context.Context, productID int, weightKg float64) error
}

// WeightSource is a secondary port resolving unit weights for a batch of products.
// Products it does not know are simply absent from the result.
type WeightSource interface {
	Kind() WeightSourceKind
	GetWeights(ctx context.Context, productIDs []int) (map[int]float64, error)
}

// WeightStore is a writable WeightSource holding operator overrides.
type WeightStore interface {
	WeightSource
	SetWeight(ctx context.Context, productID int, weightKg float64) error
}

// QuoteCache stores finished quotes. Keys embed the current weight generation:
// a quote stored under a key taken before Invalidate is never read again.
type QuoteCache interface {
	Key(ctx context.Context, req domain.ShippingRequest) (string, error)
	Get(ctx context.Context, key string) (*domain.QuoteResult, bool, error)
	Set(ctx context.Context, key string, result *domain.QuoteResult, ttl time.Duration) error
	// Invalidate makes every stored quote unreachable.
	Invalidate(ctx context.Context) error
}
