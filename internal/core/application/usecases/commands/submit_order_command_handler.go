package commands

import (
	"context"

	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/core/ports"
)

// SubmitOrderResult is the outcome of a submission attempt. Exactly one of
// the three branches is populated:
//
//   - Violation: a business rule failed; nothing was sent to the backend.
//   - ExistingOrders: orders already exist for this customer and date; the
//     caller must route to the read-only order-exists view. This is a
//     defined alternate flow, not an error.
//   - Confirmation (+ Payload): the order was submitted; the payload is
//     carried to the confirmation view.
type SubmitOrderResult struct {
	Violation      *order.Violation
	ExistingOrders []order.ExistingOrder
	Confirmation   *ports.OrderConfirmation
	Payload        *order.Payload
}

// Submitted reports whether the attempt ended with a confirmed submission.
func (r SubmitOrderResult) Submitted() bool {
	return r.Confirmation != nil
}

// SubmitOrderCommandHandler runs the full submission pipeline: business-rule
// validation, the mandatory duplicate-order check, and the final transmit.
//
// The duplicate check runs strictly before submission on every attempt and
// its result is never cached: another submission may land between attempts,
// and only the sequenced check-then-submit eliminates the stale-check race.
type SubmitOrderCommandHandler struct {
	backend   ports.OrderBackend
	validator services.OrderValidator
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(backend ports.OrderBackend, validator services.OrderValidator) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		backend:   backend,
		validator: validator,
	}
}

// Handle processes a submission attempt.
//
// A non-nil error means a transport or backend failure; the composition
// session is left untouched so the user may simply resubmit. No retry
// happens here.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	session := cmd.Session()

	if v := h.validator.Validate(cmd.DeliveryDate(), session.Profiles(), session.Total()); v != nil {
		return SubmitOrderResult{Violation: v}, nil
	}

	existing, err := h.backend.CheckExisting(ctx, session.Customer().ID(), cmd.DeliveryDate())
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if len(existing) > 0 {
		return SubmitOrderResult{ExistingOrders: existing}, nil
	}

	o, err := session.BuildOrder(cmd.DeliveryDate())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	payload := o.Payload()
	confirmation, err := h.backend.Submit(ctx, payload)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		Confirmation: confirmation,
		Payload:      &payload,
	}, nil
}
