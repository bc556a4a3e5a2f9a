package customer

import (
	"strings"

	"driverroutes/internal/pkg/errs"
)

var (
	// ErrCustomerIDIsRequired is returned when a customer is built without an identifier.
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer id")

	// ErrCustomerIDIsInvalid is returned for identifiers that are not purely numeric.
	// Customer accounts are keyed by their numeric ERP account number.
	ErrCustomerIDIsInvalid = errs.NewValueIsInvalidError("customer id must be numeric")
)

// ShipTo is a delivery address variant associated with a customer account.
type ShipTo struct {
	ID   string
	Name string
}

// Customer holds the account metadata shown on the order form: display name,
// assigned sales representative, and the selectable ship-to locations.
// It is loaded once per order composition session and immutable within it.
type Customer struct {
	id            string
	name          string
	salesRepName  string
	salesRepPhone string
	email         string
	shipTos       []ShipTo
}

// NewCustomer creates a Customer from backend account data.
// The identifier must be present and numeric; everything else is carried as-is.
func NewCustomer(id, name, salesRepName, salesRepPhone, email string, shipTos []ShipTo) (*Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrCustomerIDIsRequired
	}
	if !isNumeric(id) {
		return nil, ErrCustomerIDIsInvalid
	}

	return &Customer{
		id:            id,
		name:          name,
		salesRepName:  salesRepName,
		salesRepPhone: salesRepPhone,
		email:         email,
		shipTos:       shipTos,
	}, nil
}

// ID returns the numeric account identifier.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// SalesRepName returns the assigned sales representative's name.
func (c *Customer) SalesRepName() string {
	return c.salesRepName
}

// SalesRepPhone returns the assigned sales representative's phone number.
func (c *Customer) SalesRepPhone() string {
	return c.salesRepPhone
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// ShipTos returns the customer's delivery address variants.
func (c *Customer) ShipTos() []ShipTo {
	return c.shipTos
}

// DefaultShipToID returns the first ship-to's identifier, or "" when the
// account has none. The order form preselects this value.
func (c *Customer) DefaultShipToID() string {
	if len(c.shipTos) == 0 {
		return ""
	}
	return c.shipTos[0].ID
}

// ShipToName resolves a ship-to identifier to its display name,
// returning "" for unknown identifiers.
func (c *Customer) ShipToName(id string) string {
	for _, s := range c.shipTos {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
