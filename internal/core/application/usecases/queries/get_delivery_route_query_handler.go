package queries

import (
	"context"
	"fmt"

	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/ports"
)

// GetDeliveryRouteQueryHandler loads a driver's route from the backend and
// annotates it with planned stop-to-stop time differences.
//
// The backend returns stops ordered by planned arrival time; the handler
// relies on that order and never re-sorts.
type GetDeliveryRouteQueryHandler struct {
	backend ports.RouteBackend
}

// NewGetDeliveryRouteQueryHandler creates a handler for route queries.
func NewGetDeliveryRouteQueryHandler(backend ports.RouteBackend) GetDeliveryRouteQueryHandler {
	return GetDeliveryRouteQueryHandler{backend: backend}
}

// Handle fetches the route and computes time differences for each stop.
// Returns the stops in planned arrival order.
func (h GetDeliveryRouteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryRouteQuery,
) ([]*route.DeliveryStop, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stops, err := h.backend.GetRoute(ctx, query.DriverName(), query.Date())
	if err != nil {
		return nil, fmt.Errorf("get route for driver %s on %s: %w",
			query.DriverName(), query.Date(), err)
	}

	route.ComputeTimeDifferences(stops)
	return stops, nil
}
