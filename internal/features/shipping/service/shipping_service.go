package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"frete-service/internal/core/logger"
	"frete-service/internal/features/shipping/domain"
	"frete-service/internal/features/shipping/ports"

	"go.uber.org/zap"
)

var (
	// ErrWeightStoreUnavailable is returned by SetProductWeight when no override store is configured.
	ErrWeightStoreUnavailable = errors.New("weight override store not configured")
	// ErrInvalidWeight is returned for weights outside (0, domain.MaxUnitWeightKg].
	ErrInvalidWeight = errors.New("weight must be a positive number")
)

// ShippingServiceImpl implements ports.ShippingService.
type ShippingServiceImpl struct {
	engine   *domain.RateEngine
	sources  []ports.WeightSource
	store    ports.WeightStore
	cache    ports.QuoteCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Option configures a ShippingServiceImpl.
type Option func(*ShippingServiceImpl)

// WithWeightStore registers a writable override store. It is consulted before any other source.
func WithWeightStore(store ports.WeightStore) Option {
	return func(s *ShippingServiceImpl) {
		s.store = store
	}
}

// WithQuoteCache enables caching of finished quotes for ttl. A zero ttl disables it.
func WithQuoteCache(cache ports.QuoteCache, ttl time.Duration) Option {
	return func(s *ShippingServiceImpl) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// NewShippingService creates a service pricing with engine. Weight sources are
// consulted in the given order; the first source knowing a product wins.
func NewShippingService(engine *domain.RateEngine, sources []ports.WeightSource, opts ...Option) *ShippingServiceImpl {
	s := &ShippingServiceImpl{
		engine: engine,
		logger: logger.Named("shipping.service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store != nil {
		s.sources = append([]ports.WeightSource{s.store}, sources...)
	} else {
		s.sources = sources
	}
	return s
}

// QuoteShipping validates the request and returns the three priced options.
func (s *ShippingServiceImpl) QuoteShipping(ctx context.Context, req domain.ShippingRequest) (*domain.QuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(ctx, req)
	if cacheKey != "" {
		cached, ok, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			s.logger.Warn("Quote cache lookup failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	weights, _ := s.resolveWeights(ctx, productIDs(req.Items))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.engine.Quote(req, func(id int) (float64, bool) {
		w, ok := weights[id]
		return w, ok
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to quote shipping: %w", err)
	}

	if len(result.Unweighted) > 0 {
		s.logger.Warn("Products priced with fallback weight",
			zap.Ints("product_ids", result.Unweighted),
			zap.Float64("fallback_kg", domain.FallbackUnitWeightKg),
		)
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			s.logger.Warn("Quote cache store failed", zap.Error(err))
		}
	}

	return result, nil
}

// ResolveRegion maps a state code to its pricing region.
func (s *ShippingServiceImpl) ResolveRegion(state string) domain.Region {
	return domain.ResolveRegion(state)
}

// GetProductWeight reports the unit weight used for a product and where it came from.
func (s *ShippingServiceImpl) GetProductWeight(ctx context.Context, productID int) (*ports.ProductWeight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weights, kinds := s.resolveWeights(ctx, []int{productID})
	if w, ok := weights[productID]; ok {
		return &ports.ProductWeight{ProductID: productID, WeightKg: w, Source: kinds[productID]}, nil
	}

	return &ports.ProductWeight{
		ProductID: productID,
		WeightKg:  domain.FallbackUnitWeightKg,
		Source:    ports.WeightSourceFallback,
	}, nil
}

// SetProductWeight stores an operator override for a product.
func (s *ShippingServiceImpl) SetProductWeight(ctx context.Context, productID int, weightKg float64) error {
	if weightKg <= 0 || domain.ValidateUnitWeight(weightKg) != nil {
		return ErrInvalidWeight
	}
	if s.store == nil {
		return ErrWeightStoreUnavailable
	}

	if err := s.store.SetWeight(ctx, productID, weightKg); err != nil {
		return fmt.Errorf("service: failed to save weight: %w", err)
	}

	// Cached quotes may have been priced with the previous weight.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			return fmt.Errorf("service: weight saved but cached quotes not invalidated: %w", err)
		}
	}

	s.logger.Info("Product weight override saved",
		zap.Int("product_id", productID),
		zap.Float64("weight_kg", weightKg),
	)
	return nil
}

// cacheKey returns "" when caching is disabled or the key cannot be derived.
func (s *ShippingServiceImpl) cacheKey(ctx context.Context, req domain.ShippingRequest) string {
	if s.cache == nil || s.cacheTTL <= 0 {
		return ""
	}
	key, err := s.cache.Key(ctx, req)
	if err != nil {
		s.logger.Warn("Quote cache key unavailable", zap.Error(err))
		return ""
	}
	return key
}

// resolveWeights asks each source in turn for the products still unresolved.
// A failing source is logged and skipped so quoting never depends on I/O.
func (s *ShippingServiceImpl) resolveWeights(ctx context.Context, ids []int) (map[int]float64, map[int]ports.WeightSourceKind) {
	weights := make(map[int]float64, len(ids))
	kinds := make(map[int]ports.WeightSourceKind, len(ids))
	pending := ids

	for _, source := range s.sources {
		if len(pending) == 0 {
			break
		}

		found, err := source.GetWeights(ctx, pending)
		if err != nil {
			s.logger.Warn("Weight source failed",
				zap.String("source", string(source.Kind())),
				zap.Ints("product_ids", pending),
				zap.Error(err),
			)
			continue
		}

		next := pending[:0:0]
		for _, id := range pending {
			w, ok := found[id]
			if ok && w > 0 {
				if err := domain.ValidateUnitWeight(w); err == nil {
					weights[id] = w
					kinds[id] = source.Kind()
					continue
				}
				s.logger.Warn("Ignoring invalid weight",
					zap.String("source", string(source.Kind())),
					zap.Int("product_id", id),
					zap.Float64("weight_kg", w),
				)
			}
			next = append(next, id)
		}
		pending = next
	}

	return weights, kinds
}

func productIDs(items []domain.CartItem) []int {
	seen := make(map[int]struct{}, len(items))
	ids := make([]int, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	sort.Ints(ids)
	return ids
}
