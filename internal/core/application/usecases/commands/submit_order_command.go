// Package commands contains write operations that change state in the
// upstream backends: submitting orders, stamping arrivals, and attaching
// proof-of-delivery photos. Implements the Command pattern of the CQRS
// architecture.
package commands

import (
	"errors"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrSessionIsRequired = errors.New("composition session is required")
)

// SubmitOrderCommand requests submission of a composed order for a delivery
// date. It carries the live composition session rather than a snapshot so
// that a failed submission leaves the composed state intact for retry.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(session, deliveryDate)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // transport failure: state preserved, user may resubmit
//	}
type SubmitOrderCommand struct {
	session      *services.Composer
	deliveryDate kernel.DeliveryDate

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a submission command for the session.
// The delivery date may be the zero (absent) date; the validator reports it
// as the first violated rule. The session must exist and have its customer
// loaded.
func NewSubmitOrderCommand(session *services.Composer, deliveryDate kernel.DeliveryDate) (SubmitOrderCommand, error) {
	if session == nil || session.Customer() == nil {
		return SubmitOrderCommand{}, ErrSessionIsRequired
	}

	return SubmitOrderCommand{
		session:      session,
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Session returns the composition session being submitted.
func (c SubmitOrderCommand) Session() *services.Composer {
	return c.session
}

// DeliveryDate returns the requested delivery date.
func (c SubmitOrderCommand) DeliveryDate() kernel.DeliveryDate {
	return c.deliveryDate
}
