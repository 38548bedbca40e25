package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"luxbag-tracker/internal/core/config"
	"luxbag-tracker/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T, handler http.HandlerFunc) *HTTPCatalogAdapter {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return NewHTTPCatalogAdapter(config.CatalogConfig{
		URL:            ts.URL,
		TimeoutSeconds: 2,
	})
}

// TestHTTPCatalogAdapter_GetProduct verifies mapping of a catalog response.
func TestHTTPCatalogAdapter_GetProduct(t *testing.T) {
	adapter := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/handbags/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "42",
			"handbagName": "Classic Tote",
			"brand": "LuxBag",
			"category": "Tote",
			"cost": 120.5,
			"uri": "https://cdn.example.com/42.jpg",
			"percentOff": 0.1
		}`))
	})

	product, err := adapter.GetProduct(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "42", product.ID)
	assert.Equal(t, "Classic Tote", product.Name)
	assert.Equal(t, "LuxBag", product.Brand)
	assert.Equal(t, 120.5, product.Cost)
	assert.Equal(t, "https://cdn.example.com/42.jpg", product.ImageURL)
	assert.Equal(t, 0.1, product.PercentOff)
}

// TestHTTPCatalogAdapter_GetProduct_NotFound verifies the not-found sentinel.
func TestHTTPCatalogAdapter_GetProduct_NotFound(t *testing.T) {
	adapter := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	product, err := adapter.GetProduct(context.Background(), "missing")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// TestHTTPCatalogAdapter_GetProduct_ServerError verifies non-404 failures.
func TestHTTPCatalogAdapter_GetProduct_ServerError(t *testing.T) {
	adapter := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	product, err := adapter.GetProduct(context.Background(), "42")
	assert.Nil(t, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog API returned status")
}

// TestHTTPCatalogAdapter_HealthCheck verifies health probing.
func TestHTTPCatalogAdapter_HealthCheck(t *testing.T) {
	healthy := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, healthy.HealthCheck(context.Background()))

	broken := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, broken.HealthCheck(context.Background()))
}
