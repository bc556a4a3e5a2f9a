package ports

import (
	"context"

	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/customer"
)

// CustomerData is everything the catalog backend returns for one customer:
// the account metadata and the customer's sellable profiles.
type CustomerData struct {
	Customer *customer.Customer
	Profiles []*catalog.Profile
}

// CatalogGateway supplies customer account metadata and catalog profiles.
// The promotional specials list is fetched through the same operation using
// the reserved catalog.SpecialsCustomerID.
type CatalogGateway interface {
	// FetchCustomer retrieves a customer's account data and catalog.
	FetchCustomer(ctx context.Context, customerID string) (*CustomerData, error)
}
