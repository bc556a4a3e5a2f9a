package order

import "driverroutes/internal/core/domain/model/kernel"

// ExistingProfile is one line of an order already on file, as the order
// backend returns it.
type ExistingProfile struct {
	Description string  `json:"profileDescription"`
	UnitType    string  `json:"unitType"`
	PackSize    float64 `json:"packSize"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ExistingOrder is an order already placed by a customer for a delivery date.
// It is backend-owned data, reconstructed per duplicate check and rendered
// read-only; the core never edits or resubmits it.
type ExistingOrder struct {
	CustomerName string            `json:"customerName"`
	SalesRepName string            `json:"salesRepName"`
	DeliveryDate string            `json:"deliveryDate"`
	ShipToName   string            `json:"shipToName"`
	Profiles     []ExistingProfile `json:"profiles"`
}

// ExistingOrderRow is one display row of the order-exists surface: a profile
// line joined with the order's customer and delivery metadata.
type ExistingOrderRow struct {
	CustomerName string  `json:"customerName"`
	SalesRepName string  `json:"salesRepName"`
	Description  string  `json:"profileDescription"`
	UnitType     string  `json:"unitType"`
	PackSize     float64 `json:"packSize"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	DeliveryDate string  `json:"deliveryDate"`
	ShipToName   string  `json:"shipToName"`
}

// Rows flattens the order into display rows, one per profile line.
func (o ExistingOrder) Rows() []ExistingOrderRow {
	rows := make([]ExistingOrderRow, len(o.Profiles))
	for i, p := range o.Profiles {
		rows[i] = ExistingOrderRow{
			CustomerName: o.CustomerName,
			SalesRepName: o.SalesRepName,
			Description:  p.Description,
			UnitType:     p.UnitType,
			PackSize:     p.PackSize,
			Price:        p.Price,
			Quantity:     p.Quantity,
			DeliveryDate: o.DeliveryDate,
			ShipToName:   o.ShipToName,
		}
	}
	return rows
}

// RecapTotal sums price × quantity over the order's lines. The recap shown on
// the read-only view intentionally ignores pack size; it is an informational
// figure, not the invoiced total.
func (o ExistingOrder) RecapTotal() kernel.Money {
	amount := 0.0
	for _, p := range o.Profiles {
		amount += p.Price * float64(p.Quantity)
	}
	return kernel.NewMoneyFromDollars(amount)
}

// AnyShipToName reports whether any of the orders carries a ship-to name,
// which decides whether the ship-to column is shown.
func AnyShipToName(orders []ExistingOrder) bool {
	for _, o := range orders {
		if o.ShipToName != "" {
			return true
		}
	}
	return false
}
