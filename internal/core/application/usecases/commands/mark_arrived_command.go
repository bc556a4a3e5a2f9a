package commands

import (
	"errors"

	"driverroutes/internal/pkg/guard"
)

var (
	ErrMarkArrivedCommandIsNotConstructed = errors.New(
		"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
	)
	ErrStopIDIsInvalid = errors.New("stop id must be greater than 0")
)

// MarkArrivedCommand requests the backend to stamp a delivery stop's actual
// arrival time server-side.
type MarkArrivedCommand struct {
	stopID int64

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates an arrival-confirmation command for the stop.
func NewMarkArrivedCommand(stopID int64) (MarkArrivedCommand, error) {
	if stopID <= 0 {
		return MarkArrivedCommand{}, ErrStopIDIsInvalid
	}

	return MarkArrivedCommand{
		stopID: stopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// StopID returns the delivery stop's identifier.
func (c MarkArrivedCommand) StopID() int64 {
	return c.stopID
}
