package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"frete-service/internal/core/config"
	"frete-service/internal/core/httpclient"
	"frete-service/internal/features/shipping/ports"
)

// StorefrontCatalogAdapter reads product weights from the storefront product API.
type StorefrontCatalogAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the storefront root, without trailing slash.
	baseURL string
}

// NewStorefrontCatalogAdapter creates a new instance of StorefrontCatalogAdapter.
func NewStorefrontCatalogAdapter(cfg config.CatalogConfig) *StorefrontCatalogAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &StorefrontCatalogAdapter{
		client:  httpclient.NewClient("catalog", timeout),
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}
}

// Kind implements ports.WeightSource.
func (a *StorefrontCatalogAdapter) Kind() ports.WeightSourceKind {
	return ports.WeightSourceCatalog
}

// GetWeights fetches each product. Products the storefront does not know, or
// that have no weight, are left out of the result.
func (a *StorefrontCatalogAdapter) GetWeights(ctx context.Context, productIDs []int) (map[int]float64, error) {
	out := make(map[int]float64, len(productIDs))
	for _, id := range productIDs {
		w, ok, err := a.getWeight(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out[id] = w
		}
	}
	return out, nil
}

func (a *StorefrontCatalogAdapter) getWeight(ctx context.Context, productID int) (float64, bool, error) {
	url := fmt.Sprintf("%s/api/products/%d", a.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("catalog API returned status: %d", resp.StatusCode)
	}

	var product catalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return 0, false, fmt.Errorf("failed to decode response: %w", err)
	}

	if product.Weight == nil || *product.Weight <= 0 {
		return 0, false, nil
	}
	return float64(*product.Weight), true, nil
}

// HealthCheck verifies that the storefront product API is reachable.
func (a *StorefrontCatalogAdapter) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/products?limit=1", nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// catalogProduct is the subset of the storefront product payload we read.
type catalogProduct struct {
	// ID is the product identifier.
	ID int `json:"id"`
	// Weight is the unit weight in kg. Absent or null when not registered.
	Weight *flexFloat `json:"weight"`
}

// flexFloat accepts both JSON numbers and numeric strings; decimal columns
// are serialized as strings by the storefront.
type flexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid weight %q: %w", s, err)
	}
	// "Inf" and "NaN" parse but are not weights; treat them as unregistered.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	*f = flexFloat(v)
	return nil
}
