package route

import (
	"math"
	"net/url"
	"sort"
	"time"
)

// Driver identifies a delivery driver. The name doubles as the routing key
// when querying the driver's stops for a date.
type Driver struct {
	Name string `json:"name"`
}

// SortDrivers orders drivers by name ascending, the order the route surface
// lists them in.
func SortDrivers(drivers []Driver) {
	sort.Slice(drivers, func(i, j int) bool {
		return drivers[i].Name < drivers[j].Name
	})
}

// DeliveryStop is one stop on a driver's route for a date. It is a transient
// view model reconstructed from the route backend per load and mutated in
// place when an arrival is confirmed or a proof photo is attached.
//
// TimeDifference is the only client-derived field: minutes between this
// stop's planned arrival and its predecessor's, nil for the first stop.
// Every other field is backend-owned.
type DeliveryStop struct {
	ID                 int64      `json:"id"`
	PlannedArrivalTime time.Time  `json:"plannedArrivalTime"`
	ActualArrivalTime  *time.Time `json:"actualArrivalTime"`
	DeliveryAddress1   string     `json:"deliveryAddress1"`
	Address2           string     `json:"address2"`
	Address3           string     `json:"address3"`
	CustomerPhone      string     `json:"customerPhone"`
	PhotoURL           *string    `json:"photoUrl"`
	TimeDifference     *int       `json:"timeDifference,omitempty"`
}

// MapsURL derives a Google Maps search link for the stop's street address.
func (s *DeliveryStop) MapsURL() string {
	query := url.QueryEscape(s.Address2 + " " + s.Address3)
	return "https://www.google.com/maps/search/?api=1&query=" + query
}

// ComputeTimeDifferences derives each stop's gap from its predecessor in
// whole minutes, walking from the last stop toward the first so every
// computation reads only planned times, never previously-derived gaps.
// Negative gaps are kept as-is when stops are not actually time-ordered.
// The first stop's gap is cleared afterwards, overriding any stale value
// carried in from a previous load.
func ComputeTimeDifferences(stops []*DeliveryStop) {
	for i := len(stops) - 1; i > 0; i-- {
		current := stops[i]
		previous := stops[i-1]

		minutes := current.PlannedArrivalTime.Sub(previous.PlannedArrivalTime).Minutes()
		diff := int(math.Floor(minutes + 0.5))
		current.TimeDifference = &diff
	}

	if len(stops) > 0 {
		stops[0].TimeDifference = nil
	}
}

// ServerUpdate carries the server-owned stop fields returned by the backend
// after a proof-of-delivery upload. Nil fields were not part of the response
// and leave the in-memory value untouched.
type ServerUpdate struct {
	PlannedArrivalTime *time.Time `json:"plannedArrivalTime"`
	ActualArrivalTime  *time.Time `json:"actualArrivalTime"`
	DeliveryAddress1   *string    `json:"deliveryAddress1"`
	Address2           *string    `json:"address2"`
	Address3           *string    `json:"address3"`
	CustomerPhone      *string    `json:"customerPhone"`
	PhotoURL           *string    `json:"photoUrl"`
}

// ApplyServerUpdate merges the server-owned subset into the stop, field by
// field. Client-derived state (TimeDifference) is never overwritten.
func (s *DeliveryStop) ApplyServerUpdate(u ServerUpdate) {
	if u.PlannedArrivalTime != nil {
		s.PlannedArrivalTime = *u.PlannedArrivalTime
	}
	if u.ActualArrivalTime != nil {
		s.ActualArrivalTime = u.ActualArrivalTime
	}
	if u.DeliveryAddress1 != nil {
		s.DeliveryAddress1 = *u.DeliveryAddress1
	}
	if u.Address2 != nil {
		s.Address2 = *u.Address2
	}
	if u.Address3 != nil {
		s.Address3 = *u.Address3
	}
	if u.CustomerPhone != nil {
		s.CustomerPhone = *u.CustomerPhone
	}
	if u.PhotoURL != nil {
		s.PhotoURL = u.PhotoURL
	}
}
