package repositories

import (
	"database/sql"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type CancellationRepository struct {
	DB *sql.DB
}

func (r CancellationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateTx inserts the cancellation inside the caller's transaction. The
// unique key on booking_id makes a second record for the same booking
// impossible.
func (r CancellationRepository) CreateTx(tx *sql.Tx, c models.Cancellation) (models.Cancellation, error) {
	res, err := tx.Exec(`
		INSERT INTO cancellations (booking_id, user_id, cancel_date, refund_amount, refund_percent)
		VALUES (?, ?, ?, ?, ?)`,
		c.BookingID, c.UserID, c.CancelDate, c.RefundAmount, c.RefundPercent)
	if err != nil {
		if isDuplicate(err) {
			return c, domain.ConflictError{Resource: "cancellation", Msg: "booking already cancelled"}
		}
		return c, domain.InternalError{Err: err}
	}
	c.ID, _ = res.LastInsertId()
	return c, nil
}

func (r CancellationRepository) GetByBookingID(bookingID int64) (models.Cancellation, error) {
	var c models.Cancellation
	err := r.db().QueryRow(`
		SELECT id, booking_id, user_id, cancel_date, refund_amount, refund_percent
		FROM cancellations WHERE booking_id=? LIMIT 1`, bookingID).
		Scan(&c.ID, &c.BookingID, &c.UserID, &c.CancelDate, &c.RefundAmount, &c.RefundPercent)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Resource: "cancellation"}
	}
	if err != nil {
		return c, domain.InternalError{Err: err}
	}
	return c, nil
}
