package services

import (
	"strings"
	"testing"

	"busreservation/internal/domain"
)

func validBookingRequest() BookingRequest {
	return BookingRequest{
		ScheduleID: 1,
		SeatCount:  2,
		Passengers: []PassengerInput{
			{Name: "Asha", Age: 30, Gender: "FEMALE"},
			{Name: "Ravi", Age: 34, Gender: "male"},
		},
	}
}

func TestValidateBookingRequestOK(t *testing.T) {
	if err := ValidateBookingRequest(validBookingRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateBookingRequestRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"zero schedule", func(r *BookingRequest) { r.ScheduleID = 0 }},
		{"zero seats", func(r *BookingRequest) { r.SeatCount = 0; r.Passengers = nil }},
		{"passenger count mismatch", func(r *BookingRequest) { r.Passengers = r.Passengers[:1] }},
		{"blank name", func(r *BookingRequest) { r.Passengers[0].Name = "   " }},
		{"name too long", func(r *BookingRequest) { r.Passengers[0].Name = strings.Repeat("x", 101) }},
		{"negative age", func(r *BookingRequest) { r.Passengers[0].Age = -1 }},
		{"age too high", func(r *BookingRequest) { r.Passengers[0].Age = 121 }},
		{"bad gender", func(r *BookingRequest) { r.Passengers[0].Gender = "UNKNOWN" }},
	}
	for _, c := range cases {
		req := validBookingRequest()
		c.mutate(&req)
		err := ValidateBookingRequest(req)
		if err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %T: %v", c.name, err, err)
		}
	}
}
