package order

import (
	"fmt"

	"driverroutes/internal/pkg/errs"
)

// Violation identifies the business rule an order submission breaks.
// The declaration order below is the exact evaluation order of the validator:
// a later rule is only ever reported when every earlier rule already passed.
type Violation int

const (
	// ViolationUnknown represents an invalid or undefined violation.
	// This value (0) helps catch uninitialized Violation values.
	ViolationUnknown Violation = iota

	// DeliveryDateMissing: no delivery date was selected.
	DeliveryDateMissing

	// DeliveryDateInPast: the delivery date lies strictly before today.
	DeliveryDateInPast

	// DeliveryDateIsToday: same-day orders are not accepted.
	DeliveryDateIsToday

	// DeliveryDateTooFar: the delivery date is more than three calendar
	// months after today.
	DeliveryDateTooFar

	// ClosedOnSunday: the delivery date falls on a Sunday.
	ClosedOnSunday

	// NoQuantitySelected: no line carries a quantity greater than zero.
	NoQuantitySelected

	// TotalOverCeiling: the order total exceeds the $10,000 ceiling.
	TotalOverCeiling
)

// violationMessages maps each violation to the user-facing message shown on
// the order form.
func violationMessages() map[Violation]string {
	return map[Violation]string{
		DeliveryDateMissing: "Please select a delivery date",
		DeliveryDateInPast:  "Please select a date which is not in the past.",
		DeliveryDateIsToday: "Please order at least one day in advance.",
		DeliveryDateTooFar:  "Please only submit orders delivered within the next 3 months.",
		ClosedOnSunday:      "We are closed on Sundays.",
		NoQuantitySelected:  "Please select a quantity which is not 0",
		TotalOverCeiling:    "The total amount has to be less than $10,000.",
	}
}

// Message returns the user-facing text for the violation.
func (v Violation) Message() string {
	if msg, ok := violationMessages()[v]; ok {
		return msg
	}
	return "Order cannot be submitted."
}

// String returns the violation's identifier for logs.
func (v Violation) String() string {
	switch v {
	case DeliveryDateMissing:
		return "DeliveryDateMissing"
	case DeliveryDateInPast:
		return "DeliveryDateInPast"
	case DeliveryDateIsToday:
		return "DeliveryDateIsToday"
	case DeliveryDateTooFar:
		return "DeliveryDateTooFar"
	case ClosedOnSunday:
		return "ClosedOnSunday"
	case NoQuantitySelected:
		return "NoQuantitySelected"
	case TotalOverCeiling:
		return "TotalOverCeiling"
	default:
		return fmt.Sprintf("Violation(%d)", int(v))
	}
}

// Validate checks that the violation is one of the defined rules.
func (v Violation) Validate() error {
	if _, ok := violationMessages()[v]; !ok {
		return errs.NewValueIsInvalidError("violation")
	}
	return nil
}
