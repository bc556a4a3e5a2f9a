package services

import (
	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/customer"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/pkg/errs"
)

// TotalObserver is notified synchronously whenever the composition total
// changes. Notification happens inside the mutating call, with no hidden
// scheduling; there is exactly one execution context per session.
type TotalObserver func(total kernel.Money)

// Composer holds the working set of one order composition session: the
// customer's standard catalog profiles, the promotional specials, the chosen
// quantities, and the running total.
//
// The standard and specials catalog loads are independent and may land in
// either order; the total always reflects whichever profiles have loaded so
// far and is recomputed again as each batch arrives.
//
// A Composer is owned exclusively by its session and is not safe for
// concurrent use.
type Composer struct {
	sessionID kernel.UUID
	customer  *customer.Customer
	standard  []*catalog.Profile
	specials  []*catalog.Profile
	shipToID  string
	total     kernel.Money
	observers []TotalObserver
}

// NewComposer starts an empty composition session.
func NewComposer() *Composer {
	return &Composer{
		sessionID: kernel.NewUUID(),
	}
}

// SessionID identifies the composition session in logs.
func (c *Composer) SessionID() kernel.UUID {
	return c.sessionID
}

// Subscribe registers an observer for total changes. Observers are invoked
// synchronously, in registration order, on every recompute.
func (c *Composer) Subscribe(observer TotalObserver) {
	c.observers = append(c.observers, observer)
}

// ApplyCustomer installs the customer and their standard catalog profiles,
// preselects the default ship-to, and recomputes the total.
func (c *Composer) ApplyCustomer(cust *customer.Customer, profiles []*catalog.Profile) {
	c.customer = cust
	c.standard = profiles
	c.shipToID = cust.DefaultShipToID()
	c.recompute()
}

// ApplySpecials installs the promotional profiles and recomputes the total.
// Membership in this batch is authoritative: every profile is flagged
// promotional regardless of what the catalog payload carried.
func (c *Composer) ApplySpecials(profiles []*catalog.Profile) {
	for _, p := range profiles {
		p.MarkPromotional()
	}
	c.specials = profiles
	c.recompute()
}

// Customer returns the session's customer, or nil while the catalog load is
// still outstanding.
func (c *Composer) Customer() *customer.Customer {
	return c.customer
}

// StandardProfiles returns the customer's catalog profiles.
func (c *Composer) StandardProfiles() []*catalog.Profile {
	return c.standard
}

// SpecialProfiles returns the promotional profiles.
func (c *Composer) SpecialProfiles() []*catalog.Profile {
	return c.specials
}

// SelectShipTo records the chosen delivery address variant.
// Unknown identifiers are rejected once the customer is loaded.
func (c *Composer) SelectShipTo(id string) error {
	if id != "" && c.customer != nil && c.customer.ShipToName(id) == "" {
		return errs.NewObjectNotFoundError("shipToId", id)
	}
	c.shipToID = id
	return nil
}

// ShipToID returns the currently selected ship-to identifier, "" when none.
func (c *Composer) ShipToID() string {
	return c.shipToID
}

// SetQuantity sanitizes the raw input, stores the quantity on the addressed
// line, and recomputes the total before returning. Each call completes its
// recompute synchronously, so per-line updates are strictly ordered.
// Returns the stored quantity.
func (c *Composer) SetQuantity(profileID int64, promotional bool, raw string) (int, error) {
	profile := c.find(profileID, promotional)
	if profile == nil {
		return 0, errs.NewObjectNotFoundError("profileId", profileID)
	}

	quantity := profile.SetQuantity(raw)
	c.recompute()
	return quantity, nil
}

// Total returns the running order total: Σ(quantity × unit price × pack size)
// over both profile collections, rounded to the cent.
func (c *Composer) Total() kernel.Money {
	return c.total
}

// FormattedTotal returns the total as an en-US currency string.
func (c *Composer) FormattedTotal() string {
	return c.total.Formatted()
}

// HasAnyQuantity reports whether at least one line carries a quantity
// greater than zero.
func (c *Composer) HasAnyQuantity() bool {
	for _, p := range c.allProfiles() {
		if p.HasQuantity() {
			return true
		}
	}
	return false
}

// Profiles returns the session's standard and promotional profiles combined,
// in form order, for validation and display.
func (c *Composer) Profiles() []*catalog.Profile {
	return c.allProfiles()
}

// Lines extracts the non-zero-quantity lines as order line items.
func (c *Composer) Lines() []order.LineItem {
	var lines []order.LineItem
	for _, p := range c.allProfiles() {
		if !p.HasQuantity() {
			continue
		}
		lines = append(lines, order.LineItem{
			ProfileID:   p.ID(),
			Description: p.Description(),
			UnitType:    p.UnitType(),
			PackSize:    p.PackSize(),
			Price:       p.Price(),
			Quantity:    p.Quantity(),
			Promotional: p.IsPromotional(),
		})
	}
	return lines
}

// BuildOrder finalizes the session into an immutable Order for the given
// delivery date. The composer keeps its state, so a failed submission can be
// retried without recomposing.
func (c *Composer) BuildOrder(deliveryDate kernel.DeliveryDate) (*order.Order, error) {
	if c.customer == nil {
		return nil, errs.NewValueIsRequiredError("customer is not loaded")
	}

	var shipToID *string
	if c.shipToID != "" {
		id := c.shipToID
		shipToID = &id
	}

	return order.NewOrder(c.customer.ID(), deliveryDate, shipToID, c.Lines())
}

// find looks a profile up by id within the collection the caller addressed.
// The standard and specials collections are disjoint, so the flag picks the
// collection and the id selects the line.
func (c *Composer) find(profileID int64, promotional bool) *catalog.Profile {
	collection := c.standard
	if promotional {
		collection = c.specials
	}

	for _, p := range collection {
		if p.ID() == profileID {
			return p
		}
	}
	return nil
}

func (c *Composer) allProfiles() []*catalog.Profile {
	all := make([]*catalog.Profile, 0, len(c.standard)+len(c.specials))
	all = append(all, c.standard...)
	all = append(all, c.specials...)
	return all
}

func (c *Composer) recompute() {
	amount := 0.0
	for _, p := range c.allProfiles() {
		amount += p.LineAmount()
	}
	c.total = kernel.NewMoneyFromDollars(amount)

	for _, observer := range c.observers {
		observer(c.total)
	}
}
