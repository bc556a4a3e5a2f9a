package backendapi

import (
	"context"
	"fmt"
	"net/url"

	"driverroutes/internal/core/ports"
)

// CatalogGateway implements ports.CatalogGateway over the catalog backend's
// order-form endpoint. The promotional specials list is fetched through the
// same endpoint using the reserved specials customer id.
type CatalogGateway struct {
	*client
}

// NewCatalogGateway creates a catalog gateway for the configured backend.
func NewCatalogGateway(cfg Config, auth ports.AuthProvider) (*CatalogGateway, error) {
	c, err := newClient(cfg, auth)
	if err != nil {
		return nil, err
	}
	return &CatalogGateway{client: c}, nil
}

// FetchCustomer retrieves a customer's account data and catalog.
func (g *CatalogGateway) FetchCustomer(ctx context.Context, customerID string) (*ports.CustomerData, error) {
	var dto orderFormDTO
	path := fmt.Sprintf("/api/customers/%s/order-form", url.PathEscape(customerID))
	if err := g.getJSON(ctx, path, &dto); err != nil {
		return nil, fmt.Errorf("fetch customer %s: %w", customerID, err)
	}

	data, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("fetch customer %s: %w", customerID, err)
	}
	return data, nil
}
