package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	httpin "driverroutes/internal/adapters/in/http"
	"driverroutes/internal/core/application/usecases/commands"
	"driverroutes/internal/core/application/usecases/queries"
	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/customer"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/core/ports"
	"driverroutes/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) FetchCustomer(ctx context.Context, customerID string) (*ports.CustomerData, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.CustomerData), args.Error(1)
}

type MockOrderBackend struct {
	mock.Mock
}

func (m *MockOrderBackend) CheckExisting(
	ctx context.Context,
	customerID string,
	deliveryDate kernel.DeliveryDate,
) ([]order.ExistingOrder, error) {
	args := m.Called(ctx, customerID, deliveryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.ExistingOrder), args.Error(1)
}

func (m *MockOrderBackend) Submit(ctx context.Context, payload order.Payload) (*ports.OrderConfirmation, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.OrderConfirmation), args.Error(1)
}

type MockRouteBackend struct {
	mock.Mock
}

func (m *MockRouteBackend) GetDrivers(ctx context.Context) ([]route.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]route.Driver), args.Error(1)
}

func (m *MockRouteBackend) GetRoute(
	ctx context.Context,
	driverName string,
	date kernel.DeliveryDate,
) ([]*route.DeliveryStop, error) {
	args := m.Called(ctx, driverName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.DeliveryStop), args.Error(1)
}

func (m *MockRouteBackend) MarkArrived(ctx context.Context, stopID int64) error {
	args := m.Called(ctx, stopID)
	return args.Error(0)
}

func (m *MockRouteBackend) UploadProof(
	ctx context.Context,
	stopID int64,
	file ports.ProofFile,
) (<-chan ports.UploadEvent, error) {
	args := m.Called(ctx, stopID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan ports.UploadEvent), args.Error(1)
}

func eventStream(events ...ports.UploadEvent) <-chan ports.UploadEvent {
	ch := make(chan ports.UploadEvent, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)
	return ch
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires a full server around mocked backends and a fixed clock
// (Friday 2026-09-11).
type fixture struct {
	catalog *MockCatalogGateway
	orders  *MockOrderBackend
	routes  *MockRouteBackend
	echo    *echo.Echo
}

func newFixture() *fixture {
	f := &fixture{
		catalog: new(MockCatalogGateway),
		orders:  new(MockOrderBackend),
		routes:  new(MockRouteBackend),
		echo:    echo.New(),
	}

	today := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)
	validator := services.NewOrderValidator(clock.NewFixed(today))

	server := httpin.NewServer(
		commands.NewSubmitOrderCommandHandler(f.orders, validator),
		commands.NewMarkArrivedCommandHandler(f.routes, testLogger()),
		commands.NewAttachProofCommandHandler(f.routes, testLogger()),
		queries.NewGetOrderFormQueryHandler(f.catalog, testLogger()),
		queries.NewGetDriversQueryHandler(f.routes),
		queries.NewGetDeliveryRouteQueryHandler(f.routes),
		f.orders,
	)
	server.RegisterRoutes(f.echo)
	return f
}

func (f *fixture) request(method, target string, body io.Reader, options ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for _, opt := range options {
		opt(req)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func asJSON() func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func (f *fixture) stubOrderForm(t *testing.T) {
	t.Helper()

	cust, err := customer.NewCustomer("8821", "Harbor Cafe", "Dana", "555-0101", "dana@example.com",
		[]customer.ShipTo{{ID: "A1", Name: "Main Kitchen"}, {ID: "B2", Name: "Bakery"}})
	require.NoError(t, err)
	flour, err := catalog.NewProfile(101, "Flour 25lb", "BG", 2, 10.0, false)
	require.NoError(t, err)
	oil, err := catalog.NewProfile(900, "Olive Oil 1gal", "EA", 1, 24.0, true)
	require.NoError(t, err)

	f.catalog.On("FetchCustomer", mock.Anything, "8821").Return(&ports.CustomerData{
		Customer: cust,
		Profiles: []*catalog.Profile{flour},
	}, nil)
	f.catalog.On("FetchCustomer", mock.Anything, catalog.SpecialsCustomerID).Return(&ports.CustomerData{
		Profiles: []*catalog.Profile{oil},
	}, nil)
}

func TestServer_GetOrderForm(t *testing.T) {
	t.Run("returns the form with catalog and specials", func(t *testing.T) {
		f := newFixture()
		f.stubOrderForm(t)

		rec := f.request(http.MethodGet, "/api/customers/8821/order-form", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		cust := body["customer"].(map[string]any)
		assert.Equal(t, "Harbor Cafe", cust["customerName"])
		assert.Equal(t, "A1", body["shipToId"])
		assert.Len(t, body["profiles"], 1)
		assert.Len(t, body["specials"], 1)
		assert.Equal(t, "$0.00", body["total"])
		assert.NotEmpty(t, body["sessionId"])
	})

	t.Run("catalog failure yields a server error", func(t *testing.T) {
		f := newFixture()
		f.catalog.On("FetchCustomer", mock.Anything, "8821").
			Return(nil, errors.New("backend unreachable"))

		rec := f.request(http.MethodGet, "/api/customers/8821/order-form", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_SubmitOrder(t *testing.T) {
	submitBody := func(date string) io.Reader {
		return strings.NewReader(`{
			"deliveryDate": "` + date + `",
			"shipToId": "B2",
			"quantities": [{"profileDid": 101, "promotional": false, "quantity": "3"}]
		}`)
	}

	t.Run("confirms a valid order", func(t *testing.T) {
		f := newFixture()
		f.stubOrderForm(t)
		f.orders.On("CheckExisting", mock.Anything, "8821", mock.Anything).
			Return([]order.ExistingOrder{}, nil).Once()
		f.orders.On("Submit", mock.Anything, mock.MatchedBy(func(p order.Payload) bool {
			return p.TotalPrice == "60.00" && p.CustomerID == "8821" && *p.ShipToID == "B2"
		})).Return(&ports.OrderConfirmation{OrderID: "ORD-1"}, nil).Once()

		rec := f.request(http.MethodPost, "/api/customers/8821/order-confirmation",
			submitBody("2026-09-16"), asJSON())

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ORD-1", body["orderId"])
		f.orders.AssertExpectations(t)
	})

	t.Run("a violated rule blocks submission", func(t *testing.T) {
		f := newFixture()
		f.stubOrderForm(t)

		// 2026-09-13 is a Sunday
		rec := f.request(http.MethodPost, "/api/customers/8821/order-confirmation",
			submitBody("2026-09-13"), asJSON())

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body httpin.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "We are closed on Sundays.", body.Message)
		f.orders.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("existing orders route to the order-exists view", func(t *testing.T) {
		f := newFixture()
		f.stubOrderForm(t)
		f.orders.On("CheckExisting", mock.Anything, "8821", mock.Anything).
			Return([]order.ExistingOrder{{
				CustomerName: "Harbor Cafe",
				DeliveryDate: "2026-09-16",
				ShipToName:   "Main Kitchen",
				Profiles: []order.ExistingProfile{
					{Description: "Flour 25lb", Price: 10.0, Quantity: 2},
				},
			}}, nil).Once()

		rec := f.request(http.MethodPost, "/api/customers/8821/order-confirmation",
			submitBody("2026-09-16"), asJSON())

		require.Equal(t, http.StatusConflict, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body["orders"], 1)
		assert.Equal(t, "$20.00", body["recapTotal"])
		assert.Equal(t, true, body["showShipTo"])
		f.orders.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("malformed delivery date is rejected", func(t *testing.T) {
		f := newFixture()

		rec := f.request(http.MethodPost, "/api/customers/8821/order-confirmation",
			submitBody("tomorrow"), asJSON())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown profile id is rejected", func(t *testing.T) {
		f := newFixture()
		f.stubOrderForm(t)

		body := strings.NewReader(`{
			"deliveryDate": "2026-09-16",
			"quantities": [{"profileDid": 999, "promotional": false, "quantity": "3"}]
		}`)
		rec := f.request(http.MethodPost, "/api/customers/8821/order-confirmation", body, asJSON())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetExistingOrders(t *testing.T) {
	t.Run("returns the read-only view", func(t *testing.T) {
		f := newFixture()
		f.orders.On("CheckExisting", mock.Anything, "8821", mock.Anything).
			Return([]order.ExistingOrder{{
				CustomerName: "Harbor Cafe",
				Profiles:     []order.ExistingProfile{{Description: "Flour 25lb", Price: 10.0, Quantity: 1}},
			}}, nil).Once()

		rec := f.request(http.MethodGet, "/api/customers/8821/order-exists?deliveryDate=2026-09-16", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "$10.00", body["recapTotal"])
		assert.Equal(t, false, body["showShipTo"])
	})

	t.Run("missing delivery date is rejected", func(t *testing.T) {
		f := newFixture()
		rec := f.request(http.MethodGet, "/api/customers/8821/order-exists", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Routes(t *testing.T) {
	t.Run("drivers come back sorted", func(t *testing.T) {
		f := newFixture()
		f.routes.On("GetDrivers", mock.Anything).
			Return([]route.Driver{{Name: "Walt"}, {Name: "Anna"}}, nil).Once()

		rec := f.request(http.MethodGet, "/api/drivers", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var drivers []route.Driver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drivers))
		assert.Equal(t, []route.Driver{{Name: "Anna"}, {Name: "Walt"}}, drivers)
	})

	t.Run("route stops carry time differences and maps links", func(t *testing.T) {
		f := newFixture()
		stops := []*route.DeliveryStop{
			{ID: 1, PlannedArrivalTime: time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC),
				Address2: "12 Pier St", Address3: "Portside"},
			{ID: 2, PlannedArrivalTime: time.Date(2026, 9, 16, 10, 15, 0, 0, time.UTC)},
		}
		f.routes.On("GetRoute", mock.Anything, "Bill", mock.Anything).Return(stops, nil).Once()

		rec := f.request(http.MethodGet, "/api/drivers/Bill/route?date=2026-09-16", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, float64(15), body[1]["timeDifference"])
		assert.Contains(t, body[0]["mapsUrl"], "12+Pier+St")
	})

	t.Run("missing route date is rejected", func(t *testing.T) {
		f := newFixture()
		rec := f.request(http.MethodGet, "/api/drivers/Bill/route", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_MarkArrived(t *testing.T) {
	t.Run("stamps the stop", func(t *testing.T) {
		f := newFixture()
		f.routes.On("MarkArrived", mock.Anything, int64(77)).Return(nil).Once()

		rec := f.request(http.MethodPost, "/api/delivery-stops/77/arrived", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.routes.AssertExpectations(t)
	})

	t.Run("invalid stop id is rejected", func(t *testing.T) {
		f := newFixture()
		rec := f.request(http.MethodPost, "/api/delivery-stops/abc/arrived", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("backend failure surfaces as a server error", func(t *testing.T) {
		f := newFixture()
		f.routes.On("MarkArrived", mock.Anything, int64(77)).
			Return(errors.New("backend unreachable")).Once()

		rec := f.request(http.MethodPost, "/api/delivery-stops/77/arrived", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_AttachProof(t *testing.T) {
	multipartBody := func(t *testing.T, fieldName, fileName, contentType, content string) (io.Reader, string) {
		t.Helper()
		body := &bytes.Buffer{}
		w := multipart.NewWriter(body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		return body, w.FormDataContentType()
	}

	t.Run("uploads the photo and returns the merged stop", func(t *testing.T) {
		f := newFixture()
		photoURL := "https://cdn.example.com/pod/77.jpg"
		f.routes.On("UploadProof", mock.Anything, int64(77), mock.Anything).
			Return(eventStream(ports.UploadEvent{
				Type:    ports.UploadResponse,
				Percent: 100,
				Update:  &route.ServerUpdate{PhotoURL: &photoURL},
			}), nil).Once()

		body, contentType := multipartBody(t, "file", "pod.jpg", "image/jpeg", "proof-bytes")
		rec := f.request(http.MethodPost, "/api/delivery-stops/77/photo", body,
			func(r *http.Request) { r.Header.Set(echo.HeaderContentType, contentType) })

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var stop map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stop))
		assert.Equal(t, photoURL, stop["photoUrl"])
	})

	t.Run("missing file is rejected with the user-facing message", func(t *testing.T) {
		f := newFixture()

		rec := f.request(http.MethodPost, "/api/delivery-stops/77/photo", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body httpin.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Please select a file", body.Message)
		f.routes.AssertNotCalled(t, "UploadProof", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-image upload is rejected", func(t *testing.T) {
		f := newFixture()

		body, contentType := multipartBody(t, "file", "notes.pdf", "application/pdf", "pdf-bytes")
		rec := f.request(http.MethodPost, "/api/delivery-stops/77/photo", body,
			func(r *http.Request) { r.Header.Set(echo.HeaderContentType, contentType) })

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp httpin.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Please select an image file", resp.Message)
	})
}

func TestAuthMiddleware(t *testing.T) {
	newEcho := func(routes *MockRouteBackend, catalogGateway *MockCatalogGateway) *echo.Echo {
		f := &fixture{
			catalog: catalogGateway,
			orders:  new(MockOrderBackend),
			routes:  routes,
			echo:    echo.New(),
		}
		validator := services.NewOrderValidator(clock.NewFixed(time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)))
		server := httpin.NewServer(
			commands.NewSubmitOrderCommandHandler(f.orders, validator),
			commands.NewMarkArrivedCommandHandler(f.routes, testLogger()),
			commands.NewAttachProofCommandHandler(f.routes, testLogger()),
			queries.NewGetOrderFormQueryHandler(f.catalog, testLogger()),
			queries.NewGetDriversQueryHandler(f.routes),
			queries.NewGetDeliveryRouteQueryHandler(f.routes),
			f.orders,
		)
		f.echo.Use(httpin.AuthMiddleware())
		server.RegisterRoutes(f.echo)
		return f.echo
	}

	t.Run("protected path without a token is rejected", func(t *testing.T) {
		e := newEcho(new(MockRouteBackend), new(MockCatalogGateway))

		req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("protected path with a token passes through", func(t *testing.T) {
		routes := new(MockRouteBackend)
		routes.On("GetDrivers", mock.Anything).Return([]route.Driver{}, nil).Once()
		e := newEcho(routes, new(MockCatalogGateway))

		req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
		withBearer("user-token")(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("public order path needs no token", func(t *testing.T) {
		catalogGateway := new(MockCatalogGateway)
		cust, err := customer.NewCustomer("8821", "Harbor Cafe", "Dana", "555-0101", "dana@example.com", nil)
		require.NoError(t, err)
		catalogGateway.On("FetchCustomer", mock.Anything, mock.Anything).
			Return(&ports.CustomerData{Customer: cust}, nil)
		e := newEcho(new(MockRouteBackend), catalogGateway)

		req := httptest.NewRequest(http.MethodGet, "/api/customers/8821/order-form", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
