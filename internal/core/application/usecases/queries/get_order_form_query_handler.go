package queries

import (
	"context"
	"fmt"
	"log/slog"

	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/core/ports"
)

// GetOrderFormQueryHandler loads a customer's order form and seeds a fresh
// composition session with it.
//
// The customer's own data is mandatory: if the catalog gateway cannot return
// it, the form cannot open and the query fails. The promotional specials list
// is best-effort: a specials fetch failure is logged and the form opens with
// the standard catalog only.
type GetOrderFormQueryHandler struct {
	gateway ports.CatalogGateway
	logger  *slog.Logger
}

// NewGetOrderFormQueryHandler creates a handler for order form retrieval.
func NewGetOrderFormQueryHandler(gateway ports.CatalogGateway, logger *slog.Logger) GetOrderFormQueryHandler {
	return GetOrderFormQueryHandler{
		gateway: gateway,
		logger:  logger.With("component", "order_form_handler"),
	}
}

// Handle fetches the customer's data and specials, and returns a composition
// session ready to take quantities.
func (h GetOrderFormQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFormQuery,
) (*services.Composer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := h.gateway.FetchCustomer(ctx, query.CustomerID())
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load customer order form",
			"customerId", query.CustomerID(), "error", err)
		return nil, fmt.Errorf("load order form for customer %s: %w", query.CustomerID(), err)
	}

	composer := services.NewComposer()
	composer.ApplyCustomer(data.Customer, data.Profiles)

	specials, err := h.gateway.FetchCustomer(ctx, catalog.SpecialsCustomerID)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to load promotional specials, continuing without them",
			"customerId", query.CustomerID(), "error", err)
		return composer, nil
	}
	composer.ApplySpecials(specials.Profiles)

	return composer, nil
}
