package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"frete-service/internal/core/cache"
	"frete-service/internal/features/shipping/domain"

	"github.com/cespare/xxhash/v2"
)

const (
	quoteKeyPrefix = "frete:quote:"
	// quoteGenerationKey is bumped whenever a weight override changes.
	quoteGenerationKey = "frete:quote:generation"
)

// RedisQuoteCache implements ports.QuoteCache on top of the cache port.
type RedisQuoteCache struct {
	cache cache.Cache
	// namespace separates entries priced under different engine policies.
	namespace string
}

// NewRedisQuoteCache creates a quote cache. namespace is mixed into every key so
// that instances running different pricing policies never share entries.
func NewRedisQuoteCache(c cache.Cache, namespace string) *RedisQuoteCache {
	return &RedisQuoteCache{
		cache:     c,
		namespace: namespace,
	}
}

// Key returns the cache key of req under the current weight generation.
func (q *RedisQuoteCache) Key(ctx context.Context, req domain.ShippingRequest) (string, error) {
	generation, err := q.generation(ctx)
	if err != nil {
		return "", err
	}
	return q.QuoteKey(req, generation), nil
}

func (q *RedisQuoteCache) generation(ctx context.Context) (int64, error) {
	data, err := q.cache.Get(ctx, quoteGenerationKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read quote generation: %w", err)
	}

	generation, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed quote generation %q: %w", data, err)
	}
	return generation, nil
}

// QuoteKey returns the cache key of a request for a weight generation. Requests
// that price identically (same region, same per-product quantities, same
// subtotal) share a key. The subtotal is keyed at full precision because the
// free-shipping comparison uses it unrounded.
func (q *RedisQuoteCache) QuoteKey(req domain.ShippingRequest, generation int64) string {
	qty := make(map[int]int, len(req.Items))
	for _, item := range req.Items {
		qty[item.ProductID] += item.Quantity
	}
	ids := make([]int, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString(q.namespace)
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(generation, 10))
	b.WriteByte('|')
	b.WriteString(string(domain.ResolveRegion(req.DestinationState)))
	b.WriteByte('|')
	b.WriteString(req.OrderSubtotal.String())
	for _, id := range ids {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(id))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(qty[id]))
	}

	return quoteKeyPrefix + strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// Get returns a cached quote, ok is false on a miss.
func (q *RedisQuoteCache) Get(ctx context.Context, key string) (*domain.QuoteResult, bool, error) {
	data, err := q.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get quote from cache: %w", err)
	}

	var result domain.QuoteResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached quote: %w", err)
	}
	return &result, true, nil
}

// Set stores a quote for ttl.
func (q *RedisQuoteCache) Set(ctx context.Context, key string, result *domain.QuoteResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if err := q.cache.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to save quote to cache: %w", err)
	}
	return nil
}

// Invalidate bumps the weight generation. Older entries expire on their TTL.
func (q *RedisQuoteCache) Invalidate(ctx context.Context) error {
	if _, err := q.cache.Incr(ctx, quoteGenerationKey); err != nil {
		return fmt.Errorf("failed to invalidate quotes: %w", err)
	}
	return nil
}
