package queries

import (
	"context"
	"fmt"

	"driverroutes/internal/core/domain/model/route"
)

// DriverProvider supplies the driver roster. Satisfied by the route backend
// directly, or by the periodically refreshed in-process roster when one is
// configured.
type DriverProvider interface {
	GetDrivers(ctx context.Context) ([]route.Driver, error)
}

// GetDriversQueryHandler retrieves the driver roster for route selection.
// Drivers are returned sorted by name regardless of provider order.
type GetDriversQueryHandler struct {
	provider DriverProvider
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(provider DriverProvider) GetDriversQueryHandler {
	return GetDriversQueryHandler{provider: provider}
}

// Handle executes the query to retrieve all drivers, sorted by name.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]route.Driver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.provider.GetDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	route.SortDrivers(drivers)
	return drivers, nil
}
