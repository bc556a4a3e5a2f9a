package queries

import (
	"errors"

	"driverroutes/internal/pkg/guard"
)

var (
	ErrGetDriversQueryIsNotConstructed = errors.New(
		"GetDriversQuery must be created via NewGetDriversQuery constructor",
	)
)

// GetDriversQuery retrieves all delivery drivers known to the route backend.
// Returns driver names for the route selection screen.
//
// Example:
//
//	query := NewGetDriversQuery()
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//
//	for _, driver := range drivers {
//	    fmt.Println(driver.Name)
//	}
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query to retrieve all drivers.
// This is a parameterless query that fetches the complete driver list.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriversQueryIsNotConstructed if validation fails.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}
