package ports

import (
	"context"
	"io"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/route"
)

// ProofFile is a candidate proof-of-delivery artifact as received from the
// operator, before validation.
type ProofFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadEventType discriminates the events observed during a proof upload.
type UploadEventType int

const (
	// UploadProgress reports partial transfer of the request body.
	// Observable but not required for correctness; the core ignores it.
	UploadProgress UploadEventType = iota + 1

	// UploadResponse is the terminal event: the full backend response has
	// been received. Exactly one terminal event is emitted per upload,
	// carrying either Update or Err.
	UploadResponse
)

// UploadEvent is one observation in a proof upload's event stream.
type UploadEvent struct {
	Type    UploadEventType
	Percent int

	// Update carries the server-owned stop fields on terminal success.
	Update *route.ServerUpdate

	// Err carries the failure on a terminal error.
	Err error
}

// RouteBackend is the upstream system owning drivers, delivery stops,
// arrival stamps, and proof-of-delivery storage.
type RouteBackend interface {
	// GetDrivers returns the known delivery drivers.
	GetDrivers(ctx context.Context) ([]route.Driver, error)

	// GetRoute returns the driver's stops for the date, ordered by planned
	// arrival time ascending. The core does not re-sort.
	GetRoute(ctx context.Context, driverName string, date kernel.DeliveryDate) ([]*route.DeliveryStop, error)

	// MarkArrived asks the backend to stamp the stop's actual arrival time
	// server-side. The core never updates arrival state optimistically.
	MarkArrived(ctx context.Context, stopID int64) error

	// UploadProof streams the file to the backend, emitting progress events
	// followed by exactly one terminal UploadResponse event. The returned
	// channel is closed after the terminal event.
	UploadProof(ctx context.Context, stopID int64, file ProofFile) (<-chan UploadEvent, error)
}
