package services

import (
	"context"

	"busreservation/internal/domain/models"
)

// TripGateway is the booking side's view of the trip service: snapshot
// reads plus the capacity ledger's conditional adjust.
type TripGateway interface {
	GetSchedule(ctx context.Context, id int64) (models.ScheduleSnapshot, error)
	AdjustSeats(ctx context.Context, id int64, delta int) error
}

// BookingProbe is the trip side's view of the booking service, used by the
// deletion guard.
type BookingProbe interface {
	HasConfirmedBooking(ctx context.Context, scheduleID int64) (bool, error)
}
