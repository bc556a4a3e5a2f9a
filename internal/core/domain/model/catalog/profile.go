package catalog

import (
	"strconv"
	"strings"

	"driverroutes/internal/pkg/errs"
)

// SpecialsCustomerID is the reserved catalog identifier whose profiles are
// offered to every customer as the promotional "specials" list.
const SpecialsCustomerID = "1"

// maxQuantityDigits caps order quantities at 9999 units per line.
const maxQuantityDigits = 4

// ErrProfileIDIsInvalid is returned when a catalog profile is built without a
// positive identifier.
var ErrProfileIDIsInvalid = errs.NewValueIsInvalidError("profile id must be positive")

// Profile is a sellable catalog entry together with its working order
// quantity. Two disjoint collections exist per composition session: the
// customer's standard profiles and the promotional specials. The quantity is
// the only mutable field; everything else is fixed catalog data.
type Profile struct {
	id          int64
	description string
	unitType    string
	packSize    float64
	price       float64
	promotional bool
	quantity    int
}

// NewProfile creates a catalog profile with zero working quantity.
// A non-positive pack size falls back to 1 so that line amounts never
// collapse to zero on incomplete catalog data.
func NewProfile(id int64, description, unitType string, packSize, price float64, promotional bool) (*Profile, error) {
	if id <= 0 {
		return nil, ErrProfileIDIsInvalid
	}
	if packSize <= 0 {
		packSize = 1
	}

	return &Profile{
		id:          id,
		description: description,
		unitType:    unitType,
		packSize:    packSize,
		price:       price,
		promotional: promotional,
	}, nil
}

// ID returns the profile's catalog identifier.
func (p *Profile) ID() int64 {
	return p.id
}

// Description returns the product description.
func (p *Profile) Description() string {
	return p.description
}

// UnitType returns the selling unit (case, each, pound, ...).
func (p *Profile) UnitType() string {
	return p.unitType
}

// PackSize returns the number of units per pack.
func (p *Profile) PackSize() float64 {
	return p.packSize
}

// Price returns the unit price in dollars.
func (p *Profile) Price() float64 {
	return p.price
}

// MarkPromotional flags the profile as part of the specials catalog.
// The specials payload does not always carry the flag itself.
func (p *Profile) MarkPromotional() {
	p.promotional = true
}

// IsPromotional reports whether the profile came from the specials catalog.
func (p *Profile) IsPromotional() bool {
	return p.promotional
}

// Quantity returns the current working order quantity.
func (p *Profile) Quantity() int {
	return p.quantity
}

// HasQuantity reports whether the line carries a non-zero quantity.
// The order form uses this flag to emphasize active rows.
func (p *Profile) HasQuantity() bool {
	return p.quantity > 0
}

// SetQuantity sanitizes raw keystroke input and stores the resulting quantity.
// Returns the quantity that was stored.
func (p *Profile) SetQuantity(raw string) int {
	p.quantity = SanitizeQuantity(raw)
	return p.quantity
}

// LineAmount returns quantity × unit price × pack size in dollars.
// Rounding to the cent happens once on the order total, not per line.
func (p *Profile) LineAmount() float64 {
	return float64(p.quantity) * p.price * p.packSize
}

// SanitizeQuantity turns free-form input into an order quantity: every
// non-digit character is stripped, the remainder is capped at four digits,
// and empty or unparseable input coerces to 0.
func SanitizeQuantity(raw string) int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == maxQuantityDigits {
				break
			}
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	quantity, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return quantity
}
