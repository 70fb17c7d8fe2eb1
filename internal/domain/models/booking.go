package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Booking is owned exclusively by the booking service. It is created on a
// successful reservation and only ever mutated by cancellation; rows are
// never physically deleted.
type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"reference"`
	UserID      int64         `json:"userId"`
	ScheduleID  int64         `json:"scheduleId"`
	BookingTime time.Time     `json:"bookingTime"`
	TotalAmount int64         `json:"-"`
	SeatCount   int           `json:"noOfSeats"`
	Status      BookingStatus `json:"status"`
	Passengers  []Passenger   `json:"passengers,omitempty"`
}

type Passenger struct {
	ID         int64  `json:"passengerId"`
	BookingID  int64  `json:"-"`
	Name       string `json:"passengerName"`
	Age        int    `json:"age"`
	Gender     Gender `json:"gender"`
	SeatNumber int    `json:"seatNumber"`
}

// Cancellation is one-to-one with a Booking, created exactly once and
// immutable afterwards. RefundAmount is in cents; RefundPercent is the true
// refund/total ratio expressed as a percentage with 2 decimals.
type Cancellation struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	UserID        int64     `json:"userId"`
	CancelDate    time.Time `json:"cancelDate"`
	RefundAmount  int64     `json:"-"`
	RefundPercent float64   `json:"refundPercent"`
}
