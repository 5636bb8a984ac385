package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"frete-service/internal/core/config"
	"frete-service/internal/features/shipping/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/products":
			w.Write([]byte(`[]`))
		case "/api/products/1":
			w.Write([]byte(`{"id": 1, "name": "Camiseta", "weight": 0.35}`))
		case "/api/products/2":
			w.Write([]byte(`{"id": 2, "name": "Jaqueta", "weight": "2.750"}`))
		case "/api/products/3":
			w.Write([]byte(`{"id": 3, "name": "Vale-presente", "weight": null}`))
		case "/api/products/6":
			w.Write([]byte(`{"id": 6, "name": "Brinde", "weight": "Inf"}`))
		case "/api/products/500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestStorefrontCatalogAdapter_GetWeights(t *testing.T) {
	server := newCatalogServer(t)
	adapter := NewStorefrontCatalogAdapter(config.CatalogConfig{URL: server.URL + "/", TimeoutSeconds: 2})

	assert.Equal(t, ports.WeightSourceCatalog, adapter.Kind())

	weights, err := adapter.GetWeights(context.Background(), []int{1, 2, 3, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 0.35, 2: 2.75}, weights)
}

func TestStorefrontCatalogAdapter_ServerError(t *testing.T) {
	server := newCatalogServer(t)
	adapter := NewStorefrontCatalogAdapter(config.CatalogConfig{URL: server.URL})

	weights, err := adapter.GetWeights(context.Background(), []int{1, 500})
	require.Error(t, err)
	assert.Nil(t, weights)
	assert.Contains(t, err.Error(), "status: 500")
}

func TestStorefrontCatalogAdapter_HealthCheck(t *testing.T) {
	server := newCatalogServer(t)

	adapter := NewStorefrontCatalogAdapter(config.CatalogConfig{URL: server.URL})
	assert.NoError(t, adapter.HealthCheck(context.Background()))

	down := NewStorefrontCatalogAdapter(config.CatalogConfig{URL: "http://127.0.0.1:1"})
	assert.Error(t, down.HealthCheck(context.Background()))
}

func TestStorefrontCatalogAdapter_Cancelled(t *testing.T) {
	server := newCatalogServer(t)
	adapter := NewStorefrontCatalogAdapter(config.CatalogConfig{URL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.GetWeights(ctx, []int{1})
	assert.Error(t, err)
}
