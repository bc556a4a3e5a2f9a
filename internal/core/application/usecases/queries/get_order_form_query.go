// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"driverroutes/internal/pkg/guard"
)

var (
	ErrGetOrderFormQueryIsNotConstructed = errors.New(
		"GetOrderFormQuery must be created via NewGetOrderFormQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetOrderFormQuery retrieves everything needed to open an order form for a
// customer: account metadata, the customer's catalog and the promotional
// specials list.
//
// Example:
//
//	query, err := NewGetOrderFormQuery("8821")
//	if err != nil {
//	    return fmt.Errorf("invalid order form request: %w", err)
//	}
//
//	composer, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order form: %w", err)
//	}
//	fmt.Printf("Order form ready for %s\n", composer.Customer().Name())
type GetOrderFormQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrderFormQuery creates a query to load a customer's order form.
// Validates that the customer id is not empty.
func NewGetOrderFormQuery(customerID string) (GetOrderFormQuery, error) {
	if customerID == "" {
		return GetOrderFormQuery{}, ErrCustomerIDIsRequired
	}

	return GetOrderFormQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderFormQueryIsNotConstructed if validation fails.
func (q GetOrderFormQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFormQueryIsNotConstructed)
}

// CustomerID returns the account the order form is opened for.
func (q GetOrderFormQuery) CustomerID() string {
	return q.customerID
}
