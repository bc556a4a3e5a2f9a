package backendapi

import (
	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/customer"
	"driverroutes/internal/core/ports"
)

// orderFormDTO is the wire shape of the order-form endpoint: the customer's
// account metadata plus the sellable profiles of their catalog.
type orderFormDTO struct {
	Customer customerDTO  `json:"customer"`
	Profiles []profileDTO `json:"profiles"`
}

type customerDTO struct {
	ID            string      `json:"customerId"`
	Name          string      `json:"customerName"`
	SalesRepName  string      `json:"salesRepName"`
	SalesRepPhone string      `json:"salesRepPhone"`
	Email         string      `json:"email"`
	ShipTos       []shipToDTO `json:"shipTos"`
}

type shipToDTO struct {
	ID   string `json:"shipToId"`
	Name string `json:"shipToName"`
}

type profileDTO struct {
	ID          int64   `json:"profileDid"`
	Description string  `json:"profileDescription"`
	UnitType    string  `json:"unitType"`
	PackSize    float64 `json:"packSize"`
	Price       float64 `json:"price"`
	Promotional bool    `json:"promotional"`
}

// toDomain converts the wire representation into validated domain objects.
func (d orderFormDTO) toDomain() (*ports.CustomerData, error) {
	shipTos := make([]customer.ShipTo, 0, len(d.Customer.ShipTos))
	for _, s := range d.Customer.ShipTos {
		shipTos = append(shipTos, customer.ShipTo{ID: s.ID, Name: s.Name})
	}

	cust, err := customer.NewCustomer(
		d.Customer.ID,
		d.Customer.Name,
		d.Customer.SalesRepName,
		d.Customer.SalesRepPhone,
		d.Customer.Email,
		shipTos,
	)
	if err != nil {
		return nil, err
	}

	profiles := make([]*catalog.Profile, 0, len(d.Profiles))
	for _, p := range d.Profiles {
		profile, err := catalog.NewProfile(
			p.ID, p.Description, p.UnitType, p.PackSize, p.Price, p.Promotional)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return &ports.CustomerData{Customer: cust, Profiles: profiles}, nil
}
