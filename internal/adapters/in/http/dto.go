package http

import (
	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/customer"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/domain/services"
)

// Error is the JSON error body returned by the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type shipToResponse struct {
	ID   string `json:"shipToId"`
	Name string `json:"shipToName"`
}

type customerResponse struct {
	ID            string           `json:"customerId"`
	Name          string           `json:"customerName"`
	SalesRepName  string           `json:"salesRepName"`
	SalesRepPhone string           `json:"salesRepPhone"`
	Email         string           `json:"email"`
	ShipTos       []shipToResponse `json:"shipTos"`
}

type profileResponse struct {
	ID          int64   `json:"profileDid"`
	Description string  `json:"profileDescription"`
	UnitType    string  `json:"unitType"`
	PackSize    float64 `json:"packSize"`
	Price       float64 `json:"price"`
	Promotional bool    `json:"promotional"`
}

// orderFormResponse is the complete order form: account metadata, the
// standard catalog, the promotional specials, and the running total.
type orderFormResponse struct {
	SessionID string            `json:"sessionId"`
	Customer  customerResponse  `json:"customer"`
	Profiles  []profileResponse `json:"profiles"`
	Specials  []profileResponse `json:"specials"`
	ShipToID  string            `json:"shipToId"`
	Total     string            `json:"total"`
}

// quantityRequest addresses one line of the form. Quantity arrives as the raw
// input string; sanitization happens in the domain.
type quantityRequest struct {
	ProfileID   int64  `json:"profileDid"`
	Promotional bool   `json:"promotional"`
	Quantity    string `json:"quantity"`
}

// submitOrderRequest carries the user's composition choices for submission.
type submitOrderRequest struct {
	DeliveryDate string            `json:"deliveryDate"`
	ShipToID     string            `json:"shipToId"`
	Quantities   []quantityRequest `json:"quantities"`
}

// orderExistsResponse is the read-only view of orders already on file.
type orderExistsResponse struct {
	Orders     []order.ExistingOrderRow `json:"orders"`
	RecapTotal string                   `json:"recapTotal"`
	ShowShipTo bool                     `json:"showShipTo"`
}

// orderConfirmationResponse acknowledges a submitted order with the payload
// the confirmation view renders.
type orderConfirmationResponse struct {
	OrderID string        `json:"orderId"`
	Order   order.Payload `json:"order"`
}

// stopResponse is a delivery stop annotated with its derived maps link.
type stopResponse struct {
	*route.DeliveryStop
	MapsURL string `json:"mapsUrl"`
}

func toCustomerResponse(cust *customer.Customer) customerResponse {
	shipTos := make([]shipToResponse, 0, len(cust.ShipTos()))
	for _, s := range cust.ShipTos() {
		shipTos = append(shipTos, shipToResponse{ID: s.ID, Name: s.Name})
	}

	return customerResponse{
		ID:            cust.ID(),
		Name:          cust.Name(),
		SalesRepName:  cust.SalesRepName(),
		SalesRepPhone: cust.SalesRepPhone(),
		Email:         cust.Email(),
		ShipTos:       shipTos,
	}
}

func toProfileResponses(profiles []*catalog.Profile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileResponse{
			ID:          p.ID(),
			Description: p.Description(),
			UnitType:    p.UnitType(),
			PackSize:    p.PackSize(),
			Price:       p.Price(),
			Promotional: p.IsPromotional(),
		})
	}
	return out
}

func toOrderFormResponse(session *services.Composer) orderFormResponse {
	return orderFormResponse{
		SessionID: session.SessionID().String(),
		Customer:  toCustomerResponse(session.Customer()),
		Profiles:  toProfileResponses(session.StandardProfiles()),
		Specials:  toProfileResponses(session.SpecialProfiles()),
		ShipToID:  session.ShipToID(),
		Total:     session.FormattedTotal(),
	}
}

func toOrderExistsResponse(orders []order.ExistingOrder) orderExistsResponse {
	rows := make([]order.ExistingOrderRow, 0)
	var recap kernel.Money
	for _, o := range orders {
		rows = append(rows, o.Rows()...)
		recap = recap.Add(o.RecapTotal())
	}

	return orderExistsResponse{
		Orders:     rows,
		RecapTotal: recap.Formatted(),
		ShowShipTo: order.AnyShipToName(orders),
	}
}

func toStopResponses(stops []*route.DeliveryStop) []stopResponse {
	out := make([]stopResponse, 0, len(stops))
	for _, s := range stops {
		out = append(out, stopResponse{DeliveryStop: s, MapsURL: s.MapsURL()})
	}
	return out
}
