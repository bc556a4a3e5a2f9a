package commands

import (
	"context"
	"fmt"
	"log/slog"

	"driverroutes/internal/core/ports"
)

// MarkArrivedCommandHandler confirms a stop's arrival with the route backend.
//
// The call is fire-and-forget from the route view's perspective: local stop
// state is not updated optimistically, and a failure is logged and surfaced
// as a non-blocking notification. The operator retries by tapping again.
type MarkArrivedCommandHandler struct {
	backend ports.RouteBackend
	logger  *slog.Logger
}

// NewMarkArrivedCommandHandler creates a handler for arrival confirmations.
func NewMarkArrivedCommandHandler(backend ports.RouteBackend, logger *slog.Logger) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{
		backend: backend,
		logger:  logger.With("component", "mark_arrived_handler"),
	}
}

// Handle asks the backend to stamp the stop's actual arrival time.
func (h MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.backend.MarkArrived(ctx, cmd.StopID()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to mark delivery stop as arrived",
			"stopId", cmd.StopID(), "error", err)
		return fmt.Errorf("mark stop %d as arrived: %w", cmd.StopID(), err)
	}

	h.logger.InfoContext(ctx, "Delivery stop marked as arrived", "stopId", cmd.StopID())
	return nil
}
