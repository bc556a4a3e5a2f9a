package order

import (
	"errors"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order is built without any
	// non-zero-quantity line item.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order must contain at least one line item")

	// ErrLineQuantityIsInvalid is returned when a line item carries a
	// quantity that is not greater than zero.
	ErrLineQuantityIsInvalid = errs.NewValueIsInvalidError("line quantity must be greater than 0")
)

// LineItem is a fully-described order line: the catalog profile data the
// backend keeps for record-keeping plus the chosen quantity.
type LineItem struct {
	ProfileID   int64   `json:"profileDid"`
	Description string  `json:"profileDescription"`
	UnitType    string  `json:"unitType"`
	PackSize    float64 `json:"packSize"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Promotional bool    `json:"promotional"`
}

// OrderProfile is the reduced profile-id/quantity pair the backend uses for
// order processing.
type OrderProfile struct {
	ProfileID int64 `json:"profileDid"`
	Quantity  int   `json:"quantity"`
}

// Payload is the wire shape of a submitted order.
type Payload struct {
	CustomerID    string         `json:"customerId"`
	DeliveryDate  string         `json:"deliveryDate"`
	ShipToID      *string        `json:"shipToId"`
	TotalPrice    string         `json:"totalPrice"`
	Products      []LineItem     `json:"products"`
	OrderProfiles []OrderProfile `json:"orderProfiles"`
}

// Order represents a composed order ready for submission.
//
// Order follows these invariants:
//   - Belongs to exactly one customer
//   - Has a selected delivery date
//   - Contains only lines with quantity > 0
//   - Total equals the sum of quantity × unit price × pack size over all
//     lines, rounded to the cent
//   - Immutable once built; can only be created through NewOrder
type Order struct {
	customerID   string
	deliveryDate kernel.DeliveryDate
	shipToID     *string
	total        kernel.Money
	lines        []LineItem

	isConstructed bool
}

// NewOrder creates an Order from a customer, delivery date, optional ship-to,
// and the composed non-zero-quantity lines. The total is recomputed here from
// the lines rather than trusted from the caller, keeping the total invariant
// in one place.
func NewOrder(customerID string, deliveryDate kernel.DeliveryDate, shipToID *string, lines []LineItem) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customer id")
	}
	if deliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("delivery date")
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	amount := 0.0
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrLineQuantityIsInvalid
		}
		amount += float64(line.Quantity) * line.Price * line.PackSize
	}

	copied := make([]LineItem, len(lines))
	copy(copied, lines)

	return &Order{
		customerID:    customerID,
		deliveryDate:  deliveryDate,
		shipToID:      shipToID,
		total:         kernel.NewMoneyFromDollars(amount),
		lines:         copied,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() kernel.DeliveryDate {
	return o.deliveryDate
}

// ShipToID returns the selected ship-to identifier, or nil when the customer
// has no delivery address variants.
func (o *Order) ShipToID() *string {
	return o.shipToID
}

// Total returns the computed order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns the order's line items.
func (o *Order) Lines() []LineItem {
	return o.lines
}

// Profiles returns the reduced profile-id/quantity list for backend processing.
func (o *Order) Profiles() []OrderProfile {
	profiles := make([]OrderProfile, len(o.lines))
	for i, line := range o.lines {
		profiles[i] = OrderProfile{ProfileID: line.ProfileID, Quantity: line.Quantity}
	}
	return profiles
}

// Payload builds the wire payload for submission.
func (o *Order) Payload() Payload {
	return Payload{
		CustomerID:    o.customerID,
		DeliveryDate:  o.deliveryDate.String(),
		ShipToID:      o.shipToID,
		TotalPrice:    o.total.Fixed2(),
		Products:      o.Lines(),
		OrderProfiles: o.Profiles(),
	}
}
