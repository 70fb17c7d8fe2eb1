package repositories

import (
	"database/sql"
	"strings"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BusRepository) GetByID(id int64) (models.Bus, error) {
	var b models.Bus
	err := r.db().QueryRow(`
		SELECT id, bus_name, bus_number, bus_type, total_seats
		FROM buses WHERE id=? LIMIT 1`, id).
		Scan(&b.ID, &b.BusName, &b.BusNumber, &b.BusType, &b.TotalSeats)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "bus"}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.db().Query(`
		SELECT id, bus_name, bus_number, bus_type, total_seats
		FROM buses ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.BusName, &b.BusNumber, &b.BusType, &b.TotalSeats); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) Create(b models.Bus) (models.Bus, error) {
	res, err := r.db().Exec(`
		INSERT INTO buses (bus_name, bus_number, bus_type, total_seats)
		VALUES (?, ?, ?, ?)`,
		b.BusName, b.BusNumber, b.BusType, b.TotalSeats)
	if err != nil {
		if isDuplicate(err) {
			return b, domain.ConflictError{Resource: "bus", Msg: "bus number already registered"}
		}
		return b, domain.InternalError{Err: err}
	}
	b.ID, _ = res.LastInsertId()
	return b, nil
}

func (r BusRepository) Update(b models.Bus) (models.Bus, error) {
	res, err := r.db().Exec(`
		UPDATE buses SET bus_name=?, bus_number=?, bus_type=?, total_seats=?
		WHERE id=?`,
		b.BusName, b.BusNumber, b.BusType, b.TotalSeats, b.ID)
	if err != nil {
		if isDuplicate(err) {
			return b, domain.ConflictError{Resource: "bus", Msg: "bus number already registered"}
		}
		return b, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(b.ID); err != nil {
			return b, err
		}
	}
	return b, nil
}

func (r BusRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM buses WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "bus"}
	}
	return nil
}

// isDuplicate detects MySQL duplicate-key failures without importing the
// driver's error types everywhere.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "Error 1062")
}
