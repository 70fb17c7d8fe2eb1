package repositories

import (
	"database/sql"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleJoin = `
	SELECT
		s.id, s.bus_id, s.route_id,
		DATE_FORMAT(s.travel_date, '%Y-%m-%d'),
		TIME_FORMAT(s.departure, '%H:%i:%s'),
		TIME_FORMAT(s.arrival, '%H:%i:%s'),
		s.available_seats,
		b.bus_name, b.bus_number, b.bus_type, b.total_seats,
		r.from_location, r.to_location, r.distance_km, r.duration_minutes, r.price
	FROM schedules s
	JOIN buses b ON b.id = s.bus_id
	JOIN routes r ON r.id = s.route_id`

// ScheduleRow is a schedule joined with its bus and route, with the route
// price still in cents and without any surcharge applied.
type ScheduleRow struct {
	Schedule models.Schedule
	Bus      models.Bus
	Route    models.Route
}

func scanScheduleRow(scan func(dest ...any) error) (ScheduleRow, error) {
	var row ScheduleRow
	err := scan(
		&row.Schedule.ID, &row.Schedule.BusID, &row.Schedule.RouteID,
		&row.Schedule.TravelDate, &row.Schedule.Departure, &row.Schedule.Arrival,
		&row.Schedule.AvailableSeats,
		&row.Bus.BusName, &row.Bus.BusNumber, &row.Bus.BusType, &row.Bus.TotalSeats,
		&row.Route.FromLocation, &row.Route.ToLocation,
		&row.Route.DistanceKm, &row.Route.DurationMinutes, &row.Route.Price,
	)
	if err != nil {
		return row, err
	}
	row.Bus.ID = row.Schedule.BusID
	row.Route.ID = row.Schedule.RouteID
	return row, nil
}

func (r ScheduleRepository) GetByID(id int64) (ScheduleRow, error) {
	row, err := scanScheduleRow(r.db().QueryRow(scheduleJoin+` WHERE s.id=? LIMIT 1`, id).Scan)
	if err == sql.ErrNoRows {
		return row, domain.NotFoundError{Resource: "schedule"}
	}
	if err != nil {
		return row, domain.InternalError{Err: err}
	}
	return row, nil
}

func (r ScheduleRepository) List() ([]ScheduleRow, error) {
	return r.queryRows(scheduleJoin + ` ORDER BY s.travel_date ASC, s.departure ASC`)
}

// Search finds schedules with seats still available on a source/destination
// pair, optionally restricted to a travel date.
func (r ScheduleRepository) Search(source, destination, date string) ([]ScheduleRow, error) {
	q := scheduleJoin + `
	WHERE r.from_location = ? AND r.to_location = ? AND s.available_seats > 0`
	args := []any{source, destination}
	if date != "" {
		q += ` AND s.travel_date = ?`
		args = append(args, date)
	}
	q += ` ORDER BY s.travel_date ASC, s.departure ASC`
	return r.queryRows(q, args...)
}

func (r ScheduleRepository) queryRows(q string, args ...any) ([]ScheduleRow, error) {
	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []ScheduleRow{}
	for rows.Next() {
		row, err := scanScheduleRow(rows.Scan)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r ScheduleRepository) ExistsByBusAndDate(busID int64, travelDate string) (bool, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM schedules WHERE bus_id=? AND travel_date=?`,
		busID, travelDate).Scan(&n)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

func (r ScheduleRepository) Exists(id int64) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM schedules WHERE id=?`, id).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

func (r ScheduleRepository) Create(s models.Schedule) (models.Schedule, error) {
	res, err := r.db().Exec(`
		INSERT INTO schedules (bus_id, route_id, travel_date, departure, arrival, available_seats)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.BusID, s.RouteID, s.TravelDate, s.Departure, s.Arrival, s.AvailableSeats)
	if err != nil {
		if isDuplicate(err) {
			return s, domain.ConflictError{Resource: "schedule", Msg: "bus is already scheduled for this date"}
		}
		return s, domain.InternalError{Err: err}
	}
	s.ID, _ = res.LastInsertId()
	return s, nil
}

func (r ScheduleRepository) Update(s models.Schedule) (models.Schedule, error) {
	res, err := r.db().Exec(`
		UPDATE schedules SET bus_id=?, route_id=?, travel_date=?, departure=?, arrival=?, available_seats=?
		WHERE id=?`,
		s.BusID, s.RouteID, s.TravelDate, s.Departure, s.Arrival, s.AvailableSeats, s.ID)
	if err != nil {
		if isDuplicate(err) {
			return s, domain.ConflictError{Resource: "schedule", Msg: "bus is already scheduled for this date"}
		}
		return s, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if ok, err := r.Exists(s.ID); err != nil {
			return s, err
		} else if !ok {
			return s, domain.NotFoundError{Resource: "schedule"}
		}
	}
	return s, nil
}

func (r ScheduleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM schedules WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "schedule"}
	}
	return nil
}

// AdjustSeats is the capacity ledger primitive. The check and the update
// are a single guarded statement so concurrent adjustments can never drive
// available_seats outside [0, total_seats]. Reports applied=false when the
// guard rejected the change.
func (r ScheduleRepository) AdjustSeats(id int64, delta int) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE schedules s
		JOIN buses b ON b.id = s.bus_id
		SET s.available_seats = s.available_seats + ?
		WHERE s.id = ?
		  AND s.available_seats + ? >= 0
		  AND s.available_seats + ? <= b.total_seats`,
		delta, id, delta, delta)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}
