package backendapi

import (
	"context"
	"fmt"
	"net/url"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/core/ports"
)

// OrderBackend implements ports.OrderBackend over the order system's
// order-exists and order-confirmation endpoints.
type OrderBackend struct {
	*client
}

// NewOrderBackend creates an order backend client for the configured backend.
func NewOrderBackend(cfg Config, auth ports.AuthProvider) (*OrderBackend, error) {
	c, err := newClient(cfg, auth)
	if err != nil {
		return nil, err
	}
	return &OrderBackend{client: c}, nil
}

// CheckExisting returns the orders already on file for the customer and
// delivery date. Issues a fresh request every time; the duplicate state can
// change between checks.
func (b *OrderBackend) CheckExisting(
	ctx context.Context,
	customerID string,
	deliveryDate kernel.DeliveryDate,
) ([]order.ExistingOrder, error) {
	existing := make([]order.ExistingOrder, 0)
	path := fmt.Sprintf("/api/customers/%s/order-exists?deliveryDate=%s",
		url.PathEscape(customerID), url.QueryEscape(deliveryDate.String()))
	if err := b.getJSON(ctx, path, &existing); err != nil {
		return nil, fmt.Errorf("check existing orders for customer %s: %w", customerID, err)
	}
	return existing, nil
}

// Submit transmits a finalized order payload and returns the backend's
// confirmation.
func (b *OrderBackend) Submit(ctx context.Context, payload order.Payload) (*ports.OrderConfirmation, error) {
	var confirmation ports.OrderConfirmation
	path := fmt.Sprintf("/api/customers/%s/order-confirmation", url.PathEscape(payload.CustomerID))
	if err := b.postJSON(ctx, path, payload, &confirmation); err != nil {
		return nil, fmt.Errorf("submit order for customer %s: %w", payload.CustomerID, err)
	}
	return &confirmation, nil
}
