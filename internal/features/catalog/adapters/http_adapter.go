package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"luxbag-tracker/internal/core/config"
	"luxbag-tracker/internal/core/httpclient"
	"luxbag-tracker/internal/features/catalog/domain"
)

// HTTPCatalogAdapter implements the ProductProvider interface against the
// handbag catalog REST API.
type HTTPCatalogAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the catalog connection details.
	config config.CatalogConfig
}

// NewHTTPCatalogAdapter creates a new instance of HTTPCatalogAdapter.
func NewHTTPCatalogAdapter(cfg config.CatalogConfig) *HTTPCatalogAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPCatalogAdapter{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// GetProduct fetches a product from the catalog and maps it to the domain entity.
func (a *HTTPCatalogAdapter) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	url := fmt.Sprintf("%s/handbags/%s", a.config.URL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("catalog API returned status: %d", resp.StatusCode)
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &product, nil
}

// HealthCheck verifies that the catalog API is reachable.
func (a *HTTPCatalogAdapter) HealthCheck(ctx context.Context) error {
	url := fmt.Sprintf("%s/handbags?limit=1", a.config.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
