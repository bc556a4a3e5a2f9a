// Package http provides the inbound HTTP API serving the order-form,
// order-exists, order-confirmation and driver-route surfaces.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"driverroutes/internal/core/application/usecases/commands"
	"driverroutes/internal/core/application/usecases/queries"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/ports"
	"driverroutes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler
	markArrivedHandler commands.MarkArrivedCommandHandler
	attachProofHandler commands.AttachProofCommandHandler

	// Query handlers
	orderFormHandler  queries.GetOrderFormQueryHandler
	getDriversHandler queries.GetDriversQueryHandler
	getRouteHandler   queries.GetDeliveryRouteQueryHandler

	orderBackend ports.OrderBackend
}

// NewServer creates the HTTP server with the required command and query
// handlers. The order backend is consulted directly for the read-only
// order-exists view.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	markArrivedHandler commands.MarkArrivedCommandHandler,
	attachProofHandler commands.AttachProofCommandHandler,
	orderFormHandler queries.GetOrderFormQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getRouteHandler queries.GetDeliveryRouteQueryHandler,
	orderBackend ports.OrderBackend,
) *Server {
	return &Server{
		submitOrderHandler: submitOrderHandler,
		markArrivedHandler: markArrivedHandler,
		attachProofHandler: attachProofHandler,
		orderFormHandler:   orderFormHandler,
		getDriversHandler:  getDriversHandler,
		getRouteHandler:    getRouteHandler,
		orderBackend:       orderBackend,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/customers/:customerId/order-form", s.GetOrderForm)
	e.GET("/api/customers/:customerId/order-exists", s.GetExistingOrders)
	e.POST("/api/customers/:customerId/order-confirmation", s.SubmitOrder)
	e.GET("/api/drivers", s.GetDrivers)
	e.GET("/api/drivers/:driverName/route", s.GetDeliveryRoute)
	e.POST("/api/delivery-stops/:stopId/arrived", s.MarkArrived)
	e.POST("/api/delivery-stops/:stopId/photo", s.AttachProof)
}

// GetOrderForm handles GET /api/customers/:customerId/order-form.
func (s *Server) GetOrderForm(ctx echo.Context) error {
	query, err := queries.NewGetOrderFormQuery(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	session, err := s.orderFormHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load order form",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderFormResponse(session))
}

// GetExistingOrders handles GET /api/customers/:customerId/order-exists.
// Returns the read-only view of orders already on file for the delivery date.
func (s *Server) GetExistingOrders(ctx echo.Context) error {
	deliveryDate, err := kernel.ParseDeliveryDate(ctx.QueryParam("deliveryDate"))
	if err != nil || deliveryDate.IsZero() {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery date",
		})
	}

	existing, err := s.orderBackend.CheckExisting(
		ctx.Request().Context(), ctx.Param("customerId"), deliveryDate)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to check existing orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderExistsResponse(existing))
}

// SubmitOrder handles POST /api/customers/:customerId/order-confirmation.
//
// The request carries the user's composition choices; the catalog is loaded
// fresh, the quantities are applied through the composition session, and the
// full submission pipeline runs: rule validation, the duplicate-order check,
// then the transmit. Outcomes map to status codes: 200 confirmed,
// 409 orders already exist, 422 a business rule failed.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req submitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryDate, err := kernel.ParseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery date",
		})
	}

	query, err := queries.NewGetOrderFormQuery(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	session, err := s.orderFormHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load order form",
		})
	}

	if req.ShipToID != "" {
		if err := session.SelectShipTo(req.ShipToID); err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown ship-to id",
			})
		}
	}

	for _, q := range req.Quantities {
		if _, err := session.SetQuantity(q.ProfileID, q.Promotional, q.Quantity); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Unknown profile id",
				})
			}
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to apply quantities",
			})
		}
	}

	cmd, err := commands.NewSubmitOrderCommand(session, deliveryDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit order",
		})
	}

	switch {
	case result.Violation != nil:
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: result.Violation.Message(),
		})
	case len(result.ExistingOrders) > 0:
		return ctx.JSON(http.StatusConflict, toOrderExistsResponse(result.ExistingOrders))
	default:
		return ctx.JSON(http.StatusOK, orderConfirmationResponse{
			OrderID: result.Confirmation.OrderID,
			Order:   *result.Payload,
		})
	}
}

// GetDrivers handles GET /api/drivers - retrieves the driver roster.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve drivers",
		})
	}

	return ctx.JSON(http.StatusOK, drivers)
}

// GetDeliveryRoute handles GET /api/drivers/:driverName/route.
func (s *Server) GetDeliveryRoute(ctx echo.Context) error {
	date, err := kernel.ParseDeliveryDate(ctx.QueryParam("date"))
	if err != nil || date.IsZero() {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid route date",
		})
	}

	query, err := queries.NewGetDeliveryRouteQuery(ctx.Param("driverName"), date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid route request: " + err.Error(),
		})
	}

	stops, err := s.getRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve route",
		})
	}

	return ctx.JSON(http.StatusOK, toStopResponses(stops))
}

// MarkArrived handles POST /api/delivery-stops/:stopId/arrived.
// Failures surface as a server error; arrival state is never updated
// optimistically, the client retries by calling again.
func (s *Server) MarkArrived(ctx echo.Context) error {
	stopID, ok := parseStopID(ctx.Param("stopId"))
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stop id",
		})
	}

	cmd, err := commands.NewMarkArrivedCommand(stopID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stop id",
		})
	}

	if err := s.markArrivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to mark stop as arrived",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachProof handles POST /api/delivery-stops/:stopId/photo.
// Accepts a multipart image upload and returns the stop fields the backend
// owns after the proof is stored.
func (s *Server) AttachProof(ctx echo.Context) error {
	stopID, ok := parseStopID(ctx.Param("stopId"))
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stop id",
		})
	}

	stop := &route.DeliveryStop{ID: stopID}
	file := proofFileFromRequest(ctx)

	cmd, err := commands.NewAttachProofCommand(stop, file)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := s.attachProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to upload proof of delivery",
		})
	}

	return ctx.JSON(http.StatusOK, stopResponse{DeliveryStop: stop, MapsURL: stop.MapsURL()})
}

// proofFileFromRequest extracts the uploaded file. A missing or unreadable
// part yields the zero ProofFile, which the command rejects as absent.
func proofFileFromRequest(ctx echo.Context) ports.ProofFile {
	header, err := ctx.FormFile("file")
	if err != nil {
		return ports.ProofFile{}
	}

	content, err := header.Open()
	if err != nil {
		return ports.ProofFile{}
	}

	return ports.ProofFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}
}

func parseStopID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
