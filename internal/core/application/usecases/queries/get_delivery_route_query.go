package queries

import (
	"errors"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/pkg/guard"
)

var (
	ErrGetDeliveryRouteQueryIsNotConstructed = errors.New(
		"GetDeliveryRouteQuery must be created via NewGetDeliveryRouteQuery constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
	ErrRouteDateIsRequired  = errors.New("route date is required")
)

// GetDeliveryRouteQuery retrieves one driver's stops for a given date, with
// stop-to-stop planned time differences computed for display.
//
// Example:
//
//	date, _ := kernel.ParseDeliveryDate("2026-09-16")
//	query, err := NewGetDeliveryRouteQuery("Bill", date)
//	if err != nil {
//	    return fmt.Errorf("invalid route request: %w", err)
//	}
//
//	stops, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load route: %w", err)
//	}
//	fmt.Printf("%d stops on the route\n", len(stops))
type GetDeliveryRouteQuery struct {
	driverName string
	date       kernel.DeliveryDate

	guard guard.ConstructorGuard
}

// NewGetDeliveryRouteQuery creates a query for a driver's route on a date.
// Validates that the driver name is not empty and the date is set.
func NewGetDeliveryRouteQuery(driverName string, date kernel.DeliveryDate) (GetDeliveryRouteQuery, error) {
	routeQuery := GetDeliveryRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeQuery.setDriverName(driverName),
		routeQuery.setDate(date),
	); err != nil {
		return GetDeliveryRouteQuery{}, err
	}

	return routeQuery, nil
}

func (q *GetDeliveryRouteQuery) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}
	q.driverName = driverName

	return nil
}

func (q *GetDeliveryRouteQuery) setDate(date kernel.DeliveryDate) error {
	if date.IsZero() {
		return ErrRouteDateIsRequired
	}
	q.date = date

	return nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryRouteQueryIsNotConstructed if validation fails.
func (q GetDeliveryRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRouteQueryIsNotConstructed)
}

// DriverName returns the driver whose route is requested.
func (q GetDeliveryRouteQuery) DriverName() string {
	return q.driverName
}

// Date returns the route date.
func (q GetDeliveryRouteQuery) Date() kernel.DeliveryDate {
	return q.date
}
