package adapters

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"frete-service/internal/core/cache"
	"frete-service/internal/core/logger"
	"frete-service/internal/features/shipping/ports"

	"go.uber.org/zap"
)

const weightKeyPrefix = "frete:weight:"

// RedisWeightRepository implements ports.WeightStore on top of the cache port.
// Overrides never expire.
type RedisWeightRepository struct {
	cache cache.Cache
}

// NewRedisWeightRepository creates a new RedisWeightRepository.
func NewRedisWeightRepository(c cache.Cache) *RedisWeightRepository {
	return &RedisWeightRepository{
		cache: c,
	}
}

func weightKey(productID int) string {
	return weightKeyPrefix + strconv.Itoa(productID)
}

// Kind implements ports.WeightSource.
func (r *RedisWeightRepository) Kind() ports.WeightSourceKind {
	return ports.WeightSourceOverride
}

// GetWeights fetches the overrides of all products in one round trip.
func (r *RedisWeightRepository) GetWeights(ctx context.Context, productIDs []int) (map[int]float64, error) {
	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = weightKey(id)
	}

	raw, err := r.cache.GetMany(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to read weight overrides: %w", err)
	}

	out := make(map[int]float64, len(raw))
	for i, id := range productIDs {
		data, ok := raw[keys[i]]
		if !ok {
			continue
		}
		w, err := strconv.ParseFloat(string(data), 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			logger.Get().Warn("Ignoring malformed weight override",
				zap.Int("product_id", id),
				zap.ByteString("value", data),
			)
			continue
		}
		out[id] = w
	}
	return out, nil
}

// SetWeight stores an override for a product.
func (r *RedisWeightRepository) SetWeight(ctx context.Context, productID int, weightKg float64) error {
	value := strconv.FormatFloat(weightKg, 'f', -1, 64)
	if err := r.cache.Set(ctx, weightKey(productID), []byte(value), 0); err != nil {
		return fmt.Errorf("failed to save weight override: %w", err)
	}
	return nil
}
