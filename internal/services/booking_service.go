package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
	"busreservation/internal/repositories"
	"busreservation/internal/utils"

	"github.com/google/uuid"
)

// CancelMessage accompanies every successful cancellation response.
const CancelMessage = "Booking cancelled successfully. Amount will be refunded within 2 business days."

// BookingDetail pairs a booking with the trip snapshot used to present it.
// Schedule is nil when the trip service could not resolve it.
type BookingDetail struct {
	Booking  models.Booking
	Schedule *models.ScheduleSnapshot
}

type BookingService struct {
	BookingRepo      repositories.BookingRepository
	PassengerRepo    repositories.PassengerRepository
	CancellationRepo repositories.CancellationRepository
	Trips            TripGateway
	DB               *sql.DB
	Now              func() time.Time
	RequestID        string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking runs the reservation workflow: local validation, snapshot
// fetch, capacity precheck, conditional decrement against the ledger, seat
// allocation, then one local transactional persist.
//
// The remote decrement lands before the local persist. If the persist (or
// seat allocation) fails after the decrement succeeded, the reserved
// capacity is orphaned and the error is surfaced as-is; there is no
// automatic compensation.
func (s BookingService) CreateBooking(ctx context.Context, userID int64, req BookingRequest) (BookingDetail, error) {
	if userID <= 0 {
		return BookingDetail{}, domain.UnauthorizedError{Msg: "user not identified"}
	}
	if err := ValidateBookingRequest(req); err != nil {
		return BookingDetail{}, err
	}

	snap, err := s.Trips.GetSchedule(ctx, req.ScheduleID)
	if err != nil {
		return BookingDetail{}, err
	}

	if snap.AvailableSeats < req.SeatCount {
		return BookingDetail{}, domain.ConflictError{
			Resource: "schedule",
			Msg:      fmt.Sprintf("only %d seats available", snap.AvailableSeats),
		}
	}

	unitPrice := utils.CentsFromFloat(snap.Route.Price)
	totalAmount := unitPrice * int64(req.SeatCount)

	if err := s.Trips.AdjustSeats(ctx, req.ScheduleID, -req.SeatCount); err != nil {
		if domain.IsConflict(err) {
			return BookingDetail{}, domain.ConflictError{
				Resource: "schedule",
				Msg:      "not enough seats available",
				Err:      err,
			}
		}
		return BookingDetail{}, err
	}

	// Past this point failures leave the decrement in effect.
	occupied, err := s.PassengerRepo.OccupiedSeats(req.ScheduleID)
	if err != nil {
		return BookingDetail{}, err
	}
	seats, err := AllocateSeats(snap.TotalSeats(), occupied, req.SeatCount)
	if err != nil {
		return BookingDetail{}, err
	}

	booking := models.Booking{
		Reference:   uuid.NewString(),
		UserID:      userID,
		ScheduleID:  req.ScheduleID,
		BookingTime: s.now(),
		TotalAmount: totalAmount,
		SeatCount:   req.SeatCount,
		Status:      models.BookingConfirmed,
		Passengers:  make([]models.Passenger, 0, req.SeatCount),
	}
	for i, in := range req.Passengers {
		booking.Passengers = append(booking.Passengers, models.Passenger{
			Name:       strings.TrimSpace(in.Name),
			Age:        in.Age,
			Gender:     models.Gender(strings.ToUpper(strings.TrimSpace(in.Gender))),
			SeatNumber: seats[i],
		})
	}

	booking, err = s.BookingRepo.CreateWithPassengers(booking)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "persist_failed",
			fmt.Sprintf("schedule_id=%d seats=%d decrement already applied", req.ScheduleID, req.SeatCount))
		return BookingDetail{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "created",
		fmt.Sprintf("booking_id=%d schedule_id=%d seats=%d", booking.ID, req.ScheduleID, req.SeatCount))
	return BookingDetail{Booking: booking, Schedule: &snap}, nil
}

// CancelBooking flips the booking to CANCELLED, records the refund and asks
// the ledger to restore the seats. The restore is best-effort: the
// committed cancellation is not rolled back when it fails.
func (s BookingService) CancelBooking(ctx context.Context, bookingID, userID int64) (models.Cancellation, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return models.Cancellation{}, err
	}
	if booking.UserID != userID {
		return models.Cancellation{}, domain.UnauthorizedError{Msg: "you are not authorized to cancel this booking"}
	}
	if booking.Status == models.BookingCancelled {
		return models.Cancellation{}, domain.ConflictError{Resource: "booking", Msg: "booking is already cancelled"}
	}

	snap, err := s.Trips.GetSchedule(ctx, booking.ScheduleID)
	if err != nil {
		return models.Cancellation{}, err
	}

	departure, err := utils.CombineDateTime(snap.TravelDate, snap.Departure)
	if err != nil {
		return models.Cancellation{}, domain.InternalError{Err: err}
	}
	now := s.now()

	percent, err := RefundPercentForHours(utils.HoursUntil(departure, now))
	if err != nil {
		return models.Cancellation{}, err
	}
	refund := utils.PercentOf(booking.TotalAmount, percent)

	cancellation := models.Cancellation{
		BookingID:     booking.ID,
		UserID:        userID,
		CancelDate:    now,
		RefundAmount:  refund,
		RefundPercent: utils.Ratio(refund, booking.TotalAmount),
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Cancellation{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	if err := s.BookingRepo.MarkCancelledTx(tx, booking.ID); err != nil {
		return models.Cancellation{}, err
	}
	cancellation, err = s.CancellationRepo.CreateTx(tx, cancellation)
	if err != nil {
		return models.Cancellation{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Cancellation{}, domain.InternalError{Err: err}
	}

	if err := s.Trips.AdjustSeats(ctx, booking.ScheduleID, booking.SeatCount); err != nil {
		utils.LogEvent(s.RequestID, "booking", "restore_failed",
			fmt.Sprintf("booking_id=%d schedule_id=%d seats=%d err=%v",
				booking.ID, booking.ScheduleID, booking.SeatCount, err))
	}

	utils.LogEvent(s.RequestID, "booking", "cancelled",
		fmt.Sprintf("booking_id=%d refund_percent=%d", booking.ID, percent))
	return cancellation, nil
}

func (s BookingService) GetBooking(ctx context.Context, id int64) (BookingDetail, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return BookingDetail{}, err
	}
	return s.withSchedule(ctx, booking), nil
}

// ListAll returns every booking, newest first, each with its snapshot.
func (s BookingService) ListAll(ctx context.Context) ([]BookingDetail, error) {
	bookings, err := s.BookingRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.details(ctx, bookings), nil
}

func (s BookingService) ListByUser(ctx context.Context, userID int64) ([]BookingDetail, error) {
	bookings, err := s.BookingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, bookings), nil
}

// UpcomingJourneys returns the rider's CONFIRMED bookings whose departure
// is still ahead, latest departure first.
func (s BookingService) UpcomingJourneys(ctx context.Context, userID int64) ([]BookingDetail, error) {
	bookings, err := s.BookingRepo.ListByUserAndStatus(userID, models.BookingConfirmed)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := []BookingDetail{}
	departures := map[int64]time.Time{}
	for _, b := range bookings {
		detail := s.withSchedule(ctx, b)
		if detail.Schedule == nil {
			continue
		}
		departure, err := utils.CombineDateTime(detail.Schedule.TravelDate, detail.Schedule.Departure)
		if err != nil || !departure.After(now) {
			continue
		}
		departures[b.ID] = departure
		out = append(out, detail)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return departures[out[i].Booking.ID].After(departures[out[j].Booking.ID])
	})
	return out, nil
}

// HasConfirmedBooking answers the deletion guard's question.
func (s BookingService) HasConfirmedBooking(scheduleID int64) (bool, error) {
	return s.BookingRepo.HasConfirmedForSchedule(scheduleID)
}

// PassengersBySchedule lists passengers of the schedule's CONFIRMED
// bookings.
func (s BookingService) PassengersBySchedule(scheduleID int64) ([]models.Passenger, error) {
	return s.PassengerRepo.ListBySchedule(scheduleID)
}

func (s BookingService) details(ctx context.Context, bookings []models.Booking) []BookingDetail {
	out := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, s.withSchedule(ctx, b))
	}
	return out
}

func (s BookingService) withSchedule(ctx context.Context, b models.Booking) BookingDetail {
	detail := BookingDetail{Booking: b}
	if snap, err := s.Trips.GetSchedule(ctx, b.ScheduleID); err == nil {
		detail.Schedule = &snap
	}
	return detail
}
