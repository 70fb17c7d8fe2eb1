package models

type Bus struct {
	ID         int64  `json:"id"`
	BusName    string `json:"busName"`
	BusNumber  string `json:"busNumber"`
	BusType    string `json:"busType"` // AC / NON_AC
	TotalSeats int    `json:"totalSeats"`
}

type Route struct {
	ID              int64  `json:"id"`
	FromLocation    string `json:"fromLocation"`
	ToLocation      string `json:"toLocation"`
	DistanceKm      int    `json:"distanceKm"`
	DurationMinutes int    `json:"durationOfTravelMinutes"`
	Price           int64  `json:"-"` // base price per seat, cents
}

// Schedule is a bus running a route on a travel date. AvailableSeats is the
// authoritative capacity counter; it only moves through the guarded adjust
// update, never through a read-then-write.
type Schedule struct {
	ID             int64  `json:"id"`
	BusID          int64  `json:"busId"`
	RouteID        int64  `json:"routeId"`
	TravelDate     string `json:"travelDate"` // YYYY-MM-DD
	Departure      string `json:"departure"`  // HH:MM:SS
	Arrival        string `json:"arrival"`
	AvailableSeats int    `json:"availableSeats"`
}

// RouteView is the wire shape of a route inside a schedule snapshot, with
// the effective per-seat price (base plus any bus-type surcharge) in
// currency units.
type RouteView struct {
	ID              int64   `json:"id"`
	FromLocation    string  `json:"fromLocation"`
	ToLocation      string  `json:"toLocation"`
	DistanceKm      int     `json:"distanceKm"`
	DurationMinutes int     `json:"durationOfTravelMinutes"`
	Price           float64 `json:"price"`
}

// ScheduleSnapshot is what the trip service serves to collaborators. The
// booking side fetches it per operation and never caches it across calls.
type ScheduleSnapshot struct {
	ID             int64     `json:"id"`
	BusID          int64     `json:"busId"`
	RouteID        int64     `json:"routeId"`
	TravelDate     string    `json:"travelDate"`
	Departure      string    `json:"departure"`
	Arrival        string    `json:"arrival"`
	AvailableSeats int       `json:"availableSeats"`
	Bus            Bus       `json:"bus"`
	Route          RouteView `json:"route"`
}

// TotalSeats reports the capacity of the bus serving this schedule.
func (s ScheduleSnapshot) TotalSeats() int { return s.Bus.TotalSeats }

// SearchResult is one row of a bus search response.
type SearchResult struct {
	ScheduleID      int64   `json:"scheduleId"`
	BusName         string  `json:"busName"`
	BusNumber       string  `json:"busNumber"`
	BusType         string  `json:"busType"`
	TotalSeats      int     `json:"totalSeats"`
	FromLocation    string  `json:"fromLocation"`
	ToLocation      string  `json:"toLocation"`
	DistanceKm      int     `json:"distanceKm"`
	DurationMinutes int     `json:"durationOfTravelMinutes"`
	Price           float64 `json:"price"`
	TravelDate      string  `json:"travelDate"`
	Departure       string  `json:"departure"`
	Arrival         string  `json:"arrival"`
	AvailableSeats  int     `json:"availableSeats"`
}
