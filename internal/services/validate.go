package services

import (
	"strings"

	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

// BookingRequest is the booking-side input shape.
type BookingRequest struct {
	ScheduleID int64            `json:"scheduleId"`
	SeatCount  int              `json:"noOfSeats"`
	Passengers []PassengerInput `json:"passengers"`
}

type PassengerInput struct {
	Name   string `json:"passengerName"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// ValidateBookingRequest runs all local validation up front, before any
// remote call is made.
func ValidateBookingRequest(req BookingRequest) error {
	if req.ScheduleID <= 0 {
		return domain.ValidationError{Field: "scheduleId", Msg: "must be positive"}
	}
	if req.SeatCount <= 0 {
		return domain.ValidationError{Field: "noOfSeats", Msg: "must be positive"}
	}
	if len(req.Passengers) != req.SeatCount {
		return domain.ValidationError{
			Field: "passengers",
			Msg:   "number of passengers must match number of seats requested",
		}
	}
	for i := range req.Passengers {
		if err := validatePassenger(req.Passengers[i]); err != nil {
			return err
		}
	}
	return nil
}

func validatePassenger(p PassengerInput) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return domain.ValidationError{Field: "passengerName", Msg: "is required"}
	}
	if len(name) > 100 {
		return domain.ValidationError{Field: "passengerName", Msg: "must not exceed 100 characters"}
	}
	if p.Age < 0 || p.Age > 120 {
		return domain.ValidationError{Field: "age", Msg: "must be between 0 and 120"}
	}
	switch models.Gender(strings.ToUpper(strings.TrimSpace(p.Gender))) {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return nil
	default:
		return domain.ValidationError{Field: "gender", Msg: "must be MALE, FEMALE or OTHER"}
	}
}
