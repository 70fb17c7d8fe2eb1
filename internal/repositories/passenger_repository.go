package repositories

import (
	"database/sql"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

func (r PassengerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PassengerRepository) GetByID(id int64) (models.Passenger, error) {
	var p models.Passenger
	err := r.db().QueryRow(`
		SELECT passenger_id, booking_id, passenger_name, age, gender, seat_number
		FROM passengers WHERE passenger_id=? LIMIT 1`, id).
		Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.Gender, &p.SeatNumber)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "passenger"}
	}
	if err != nil {
		return p, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r PassengerRepository) ListByBooking(bookingID int64) ([]models.Passenger, error) {
	return r.queryPassengers(`
		SELECT passenger_id, booking_id, passenger_name, age, gender, seat_number
		FROM passengers WHERE booking_id=? ORDER BY seat_number ASC`, bookingID)
}

// ListBySchedule returns passengers of CONFIRMED bookings on a schedule.
func (r PassengerRepository) ListBySchedule(scheduleID int64) ([]models.Passenger, error) {
	return r.queryPassengers(`
		SELECT p.passenger_id, p.booking_id, p.passenger_name, p.age, p.gender, p.seat_number
		FROM passengers p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.schedule_id=? AND b.status=?
		ORDER BY p.seat_number ASC`, scheduleID, models.BookingConfirmed)
}

// OccupiedSeats is the seat allocator's view: seat numbers held by
// passengers of CONFIRMED bookings on the schedule. Read outside the
// ledger's atomic boundary.
func (r PassengerRepository) OccupiedSeats(scheduleID int64) ([]int, error) {
	rows, err := r.db().Query(`
		SELECT p.seat_number
		FROM passengers p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.schedule_id=? AND b.status=?
		ORDER BY p.seat_number ASC`, scheduleID, models.BookingConfirmed)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, seat)
	}
	return out, rows.Err()
}

func (r PassengerRepository) queryPassengers(q string, args ...any) ([]models.Passenger, error) {
	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.Gender, &p.SeatNumber); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
