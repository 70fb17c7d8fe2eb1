package repositories

import (
	"database/sql"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateWithPassengers persists a booking and its passengers as one local
// transaction. Either everything lands or nothing does.
func (r BookingRepository) CreateWithPassengers(b models.Booking) (models.Booking, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings (reference, user_id, schedule_id, booking_time, total_amount, no_of_seats, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.Reference, b.UserID, b.ScheduleID, b.BookingTime, b.TotalAmount, b.SeatCount, b.Status)
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	b.ID, _ = res.LastInsertId()

	for i := range b.Passengers {
		p := &b.Passengers[i]
		p.BookingID = b.ID
		res, err := tx.Exec(`
			INSERT INTO passengers (booking_id, passenger_name, age, gender, seat_number)
			VALUES (?, ?, ?, ?, ?)`,
			p.BookingID, p.Name, p.Age, p.Gender, p.SeatNumber)
		if err != nil {
			if isDuplicate(err) {
				return b, domain.ConflictError{Resource: "seat", Msg: "seat already taken"}
			}
			return b, domain.InternalError{Err: err}
		}
		p.ID, _ = res.LastInsertId()
	}

	if err := tx.Commit(); err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
		SELECT id, reference, user_id, schedule_id, booking_time, total_amount, no_of_seats, status
		FROM bookings WHERE id=? LIMIT 1`, id).
		Scan(&b.ID, &b.Reference, &b.UserID, &b.ScheduleID, &b.BookingTime, &b.TotalAmount, &b.SeatCount, &b.Status)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}

	passengers, err := PassengerRepository{DB: r.DB}.ListByBooking(b.ID)
	if err != nil {
		return b, err
	}
	b.Passengers = passengers
	return b, nil
}

func (r BookingRepository) ListAll() ([]models.Booking, error) {
	return r.queryBookings(`
		SELECT id, reference, user_id, schedule_id, booking_time, total_amount, no_of_seats, status
		FROM bookings ORDER BY booking_time DESC, id DESC`)
}

func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	return r.queryBookings(`
		SELECT id, reference, user_id, schedule_id, booking_time, total_amount, no_of_seats, status
		FROM bookings WHERE user_id=? ORDER BY booking_time DESC, id DESC`, userID)
}

func (r BookingRepository) ListByUserAndStatus(userID int64, status models.BookingStatus) ([]models.Booking, error) {
	return r.queryBookings(`
		SELECT id, reference, user_id, schedule_id, booking_time, total_amount, no_of_seats, status
		FROM bookings WHERE user_id=? AND status=? ORDER BY booking_time DESC, id DESC`, userID, status)
}

func (r BookingRepository) queryBookings(q string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.ScheduleID, &b.BookingTime, &b.TotalAmount, &b.SeatCount, &b.Status); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return out, domain.InternalError{Err: err}
	}

	passengers := PassengerRepository{DB: r.DB}
	for i := range out {
		list, err := passengers.ListByBooking(out[i].ID)
		if err != nil {
			return out, err
		}
		out[i].Passengers = list
	}
	return out, nil
}

// HasConfirmedForSchedule is the deletion guard's entry point on the
// booking side.
func (r BookingRepository) HasConfirmedForSchedule(scheduleID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE schedule_id=? AND status=?`,
		scheduleID, models.BookingConfirmed).Scan(&n)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

// MarkCancelledTx flips the booking status inside the caller's transaction.
func (r BookingRepository) MarkCancelledTx(tx *sql.Tx, id int64) error {
	res, err := tx.Exec(`UPDATE bookings SET status=? WHERE id=?`, models.BookingCancelled, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
