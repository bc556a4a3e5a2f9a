package services

import (
	"time"

	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/pkg/clock"
)

// maxAdvanceMonths is how far ahead orders are accepted.
const maxAdvanceMonths = 3

// orderCeiling is the largest total an order may carry.
var orderCeiling = kernel.NewMoneyFromDollars(10000)

// OrderValidator applies the submission business rules to a composed order.
//
// The rules are evaluated in a fixed order and the first violated rule wins;
// a later rule is only reached when every earlier rule passed. A date equal
// to today therefore reports the advance-order rule even when the session
// also has no quantities selected.
type OrderValidator struct {
	clk clock.Clock
}

// NewOrderValidator creates a validator that derives "today" from the given clock.
func NewOrderValidator(clk clock.Clock) OrderValidator {
	return OrderValidator{clk: clk}
}

// Validate checks the composed state against the submission rules.
// It is a pure function of its inputs and the injected clock: delivery date,
// composed line items, and computed total. Returns nil when the order may be
// submitted, otherwise the first violated rule.
func (v OrderValidator) Validate(deliveryDate kernel.DeliveryDate, profiles []*catalog.Profile, total kernel.Money) *order.Violation {
	today := kernel.DateOf(v.clk.Now())

	if deliveryDate.IsZero() {
		return violation(order.DeliveryDateMissing)
	}
	if deliveryDate.Before(today) {
		return violation(order.DeliveryDateInPast)
	}
	if deliveryDate.IsEqual(today) {
		return violation(order.DeliveryDateIsToday)
	}
	if deliveryDate.After(today.AddMonths(maxAdvanceMonths)) {
		return violation(order.DeliveryDateTooFar)
	}
	if deliveryDate.Weekday() == time.Sunday {
		return violation(order.ClosedOnSunday)
	}

	hasQuantity := false
	for _, p := range profiles {
		if p.HasQuantity() {
			hasQuantity = true
			break
		}
	}
	if !hasQuantity {
		return violation(order.NoQuantitySelected)
	}

	if total.GreaterThan(orderCeiling) {
		return violation(order.TotalOverCeiling)
	}

	return nil
}

func violation(v order.Violation) *order.Violation {
	return &v
}
