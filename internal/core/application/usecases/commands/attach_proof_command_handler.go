package commands

import (
	"context"
	"errors"
	"log/slog"

	"driverroutes/internal/core/ports"
)

// ErrUploadEndedWithoutResponse is returned when the upload event stream
// closes before a terminal response event was observed.
var ErrUploadEndedWithoutResponse = errors.New("proof upload ended without a terminal response")

// AttachProofCommandHandler uploads a validated proof-of-delivery photo and
// merges the backend's response into the in-memory stop.
//
// The upload is observed as a stream of events. Intermediate progress events
// are logged but otherwise ignored; only the terminal full-response event is
// acted upon. On terminal success the server-owned stop fields are merged
// field-by-field into the existing stop, preserving client-derived state
// such as the time-difference, and the caller refreshes the view.
type AttachProofCommandHandler struct {
	backend ports.RouteBackend
	logger  *slog.Logger
}

// NewAttachProofCommandHandler creates a handler for proof uploads.
func NewAttachProofCommandHandler(backend ports.RouteBackend, logger *slog.Logger) AttachProofCommandHandler {
	return AttachProofCommandHandler{
		backend: backend,
		logger:  logger.With("component", "attach_proof_handler"),
	}
}

// Handle uploads the file and applies the terminal response to the stop.
// Failures are retryable by re-invoking; the stop is only mutated on success.
func (h AttachProofCommandHandler) Handle(ctx context.Context, cmd AttachProofCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stop := cmd.Stop()

	events, err := h.backend.UploadProof(ctx, stop.ID, cmd.File())
	if err != nil {
		return err
	}

	for event := range events {
		switch event.Type {
		case ports.UploadProgress:
			h.logger.DebugContext(ctx, "Proof upload progress",
				"stopId", stop.ID, "percent", event.Percent)

		case ports.UploadResponse:
			if event.Err != nil {
				h.logger.ErrorContext(ctx, "Proof upload failed",
					"stopId", stop.ID, "error", event.Err)
				return event.Err
			}
			if event.Update != nil {
				stop.ApplyServerUpdate(*event.Update)
			}
			h.logger.InfoContext(ctx, "Proof of delivery attached", "stopId", stop.ID)
			return nil
		}
	}

	return ErrUploadEndedWithoutResponse
}
