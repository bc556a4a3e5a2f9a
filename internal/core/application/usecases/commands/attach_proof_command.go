package commands

import (
	"errors"
	"strings"

	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/ports"
	"driverroutes/internal/pkg/guard"
)

// MaxProofFileSize is the largest accepted proof-of-delivery photo: 4 MiB.
const MaxProofFileSize = 4 * 1024 * 1024

var (
	ErrAttachProofCommandIsNotConstructed = errors.New(
		"AttachProofCommand must be created via NewAttachProofCommand constructor",
	)
	ErrStopIsRequired = errors.New("delivery stop is required")

	// The three file checks below carry the user-facing messages shown to
	// the operator. They run in a fixed order and abort before any upload
	// attempt is made.

	ErrProofFileMissing  = errors.New("Please select a file")
	ErrProofFileNotImage = errors.New("Please select an image file")
	ErrProofFileTooLarge = errors.New("File size exceeds 4 MB.")
)

// AttachProofCommand requests attaching a proof-of-delivery photo to a stop.
// File validation happens here, at construction: a command that fails
// validation never exists, so no network call can be issued for it.
type AttachProofCommand struct {
	stop *route.DeliveryStop
	file ports.ProofFile

	guard guard.ConstructorGuard
}

// NewAttachProofCommand validates the candidate file and creates the command.
// Checks run in order: the file must be present, its MIME type must belong
// to the image family, and it must not exceed MaxProofFileSize. The first
// failing check aborts with its user-facing message.
func NewAttachProofCommand(stop *route.DeliveryStop, file ports.ProofFile) (AttachProofCommand, error) {
	if stop == nil {
		return AttachProofCommand{}, ErrStopIsRequired
	}
	if file.Content == nil || file.Size == 0 {
		return AttachProofCommand{}, ErrProofFileMissing
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return AttachProofCommand{}, ErrProofFileNotImage
	}
	if file.Size > MaxProofFileSize {
		return AttachProofCommand{}, ErrProofFileTooLarge
	}

	return AttachProofCommand{
		stop:  stop,
		file:  file,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

// Stop returns the delivery stop the photo belongs to.
func (c AttachProofCommand) Stop() *route.DeliveryStop {
	return c.stop
}

// File returns the validated proof file.
func (c AttachProofCommand) File() ports.ProofFile {
	return c.file
}
