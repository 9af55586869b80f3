// internal/domain/entity/flight_record.go
package entity

import "slices"

// Travel classes
const (
	ClassEconomy  = "Economy"
	ClassBusiness = "Business"
)

// FlightRecord is one synthetic booking offer as stored in the sink.
// Dates, times and created_at are kept in their stored string form.
type FlightRecord struct {
	FromLocation   string   `bson:"from_location" json:"from_location"`
	ToLocation     string   `bson:"to_location" json:"to_location"`
	DepartureDate  string   `bson:"departure_date" json:"departure_date"`
	DepartureTime  string   `bson:"departure_time" json:"departure_time"`
	ArrivalTime    string   `bson:"arrival_time" json:"arrival_time"`
	ReturnDate     *string  `bson:"return_date" json:"return_date"`
	ReturnTime     *string  `bson:"return_time" json:"return_time"`
	Class          string   `bson:"class" json:"class"`
	SeatMax        int      `bson:"seat_max" json:"seat_max"`
	SeatAvailable  int      `bson:"seat_available" json:"seat_available"`
	BookedSeats    []int    `bson:"booked_seats" json:"booked_seats"`
	AvailableSeats []int    `bson:"available_seats" json:"available_seats"`
	Price          int      `bson:"price" json:"price"`
	Facilities     []string `bson:"facilities" json:"facilities"`
	CreatedAt      string   `bson:"created_at" json:"created_at"`
	Number         string   `bson:"number" json:"number"`
}

// IsRoundTrip reports whether the record carries return fields
func (r *FlightRecord) IsRoundTrip() bool {
	return r.ReturnDate != nil
}

// SameOffer reports whether two records collide on the duplicate key:
// departure date and time, route, class and facilities.
func (r *FlightRecord) SameOffer(other *FlightRecord) bool {
	return r.DepartureDate == other.DepartureDate &&
		r.DepartureTime == other.DepartureTime &&
		r.FromLocation == other.FromLocation &&
		r.ToLocation == other.ToLocation &&
		r.Class == other.Class &&
		slices.Equal(r.Facilities, other.Facilities)
}
