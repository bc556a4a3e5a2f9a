package ports

import (
	"context"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
)

// OrderConfirmation is the backend's acknowledgement of a submitted order.
type OrderConfirmation struct {
	OrderID string `json:"id"`
}

// OrderBackend places orders with, and queries them from, the upstream order
// system.
type OrderBackend interface {
	// CheckExisting returns the orders already placed by the customer for
	// the delivery date. An empty result clears the way for submission.
	// Results must never be cached across attempts: the duplicate state can
	// change between checks.
	CheckExisting(ctx context.Context, customerID string, deliveryDate kernel.DeliveryDate) ([]order.ExistingOrder, error)

	// Submit transmits a finalized order payload.
	Submit(ctx context.Context, payload order.Payload) (*OrderConfirmation, error)
}
