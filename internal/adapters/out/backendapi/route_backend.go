package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/ports"
)

// RouteBackend implements ports.RouteBackend over the route system's driver,
// route, arrival and proof-of-delivery endpoints.
type RouteBackend struct {
	*client
}

// NewRouteBackend creates a route backend client for the configured backend.
func NewRouteBackend(cfg Config, auth ports.AuthProvider) (*RouteBackend, error) {
	c, err := newClient(cfg, auth)
	if err != nil {
		return nil, err
	}
	return &RouteBackend{client: c}, nil
}

// GetDrivers returns the known delivery drivers.
func (b *RouteBackend) GetDrivers(ctx context.Context) ([]route.Driver, error) {
	drivers := make([]route.Driver, 0)
	if err := b.getJSON(ctx, "/api/drivers", &drivers); err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}
	return drivers, nil
}

// GetRoute returns the driver's stops for the date, in the backend's planned
// arrival order.
func (b *RouteBackend) GetRoute(
	ctx context.Context,
	driverName string,
	date kernel.DeliveryDate,
) ([]*route.DeliveryStop, error) {
	stops := make([]*route.DeliveryStop, 0)
	path := fmt.Sprintf("/api/drivers/%s/route?date=%s",
		url.PathEscape(driverName), date.String())
	if err := b.getJSON(ctx, path, &stops); err != nil {
		return nil, fmt.Errorf("get route for driver %s: %w", driverName, err)
	}
	return stops, nil
}

// MarkArrived asks the backend to stamp the stop's actual arrival time.
func (b *RouteBackend) MarkArrived(ctx context.Context, stopID int64) error {
	path := fmt.Sprintf("/api/delivery-stops/%d/arrived", stopID)
	if err := b.postJSON(ctx, path, struct{}{}, nil); err != nil {
		return fmt.Errorf("mark stop %d arrived: %w", stopID, err)
	}
	return nil
}

// UploadProof streams the proof file to the backend as a multipart upload.
// Progress events are emitted as the request body is consumed by the
// transport, followed by exactly one terminal UploadResponse event carrying
// either the server's stop update or the failure. The channel is closed after
// the terminal event.
func (b *RouteBackend) UploadProof(
	ctx context.Context,
	stopID int64,
	file ports.ProofFile,
) (<-chan ports.UploadEvent, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", file.ContentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart form: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("read proof file: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart form: %w", err)
	}

	events := make(chan ports.UploadEvent, 16)
	reader := &progressReader{
		reader: body,
		total:  int64(body.Len()),
		emit: func(percent int) {
			select {
			case events <- ports.UploadEvent{Type: ports.UploadProgress, Percent: percent}:
			default:
			}
		},
	}

	path := fmt.Sprintf("/api/delivery-stops/%d/photo", stopID)
	req, err := b.newRequest(ctx, http.MethodPost, path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.ContentLength = reader.total

	go func() {
		defer close(events)

		resp, err := b.do(req)
		if err != nil {
			events <- ports.UploadEvent{
				Type: ports.UploadResponse,
				Err:  fmt.Errorf("upload proof for stop %d: %w", stopID, err),
			}
			return
		}
		defer resp.Body.Close()

		var update route.ServerUpdate
		if err := json.NewDecoder(resp.Body).Decode(&update); err != nil {
			events <- ports.UploadEvent{
				Type: ports.UploadResponse,
				Err:  fmt.Errorf("decode proof response for stop %d: %w", stopID, err),
			}
			return
		}

		events <- ports.UploadEvent{
			Type:    ports.UploadResponse,
			Percent: 100,
			Update:  &update,
		}
	}()

	return events, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// progressReader reports transfer progress as whole percentages while the
// transport drains the request body. Repeated percentages are collapsed.
type progressReader struct {
	reader io.Reader
	total  int64
	read   int64
	last   int
	emit   func(percent int)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.read += int64(n)

	if r.total > 0 {
		percent := int(r.read * 100 / r.total)
		if percent > 100 {
			percent = 100
		}
		if percent != r.last {
			r.last = percent
			r.emit(percent)
		}
	}
	return n, err
}
