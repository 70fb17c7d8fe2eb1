package repositories

import (
	"database/sql"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	var rt models.Route
	err := r.db().QueryRow(`
		SELECT id, from_location, to_location, distance_km, duration_minutes, price
		FROM routes WHERE id=? LIMIT 1`, id).
		Scan(&rt.ID, &rt.FromLocation, &rt.ToLocation, &rt.DistanceKm, &rt.DurationMinutes, &rt.Price)
	if err == sql.ErrNoRows {
		return rt, domain.NotFoundError{Resource: "route"}
	}
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}
	return rt, nil
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.db().Query(`
		SELECT id, from_location, to_location, distance_km, duration_minutes, price
		FROM routes ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.FromLocation, &rt.ToLocation, &rt.DistanceKm, &rt.DurationMinutes, &rt.Price); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RouteRepository) Create(rt models.Route) (models.Route, error) {
	res, err := r.db().Exec(`
		INSERT INTO routes (from_location, to_location, distance_km, duration_minutes, price)
		VALUES (?, ?, ?, ?, ?)`,
		rt.FromLocation, rt.ToLocation, rt.DistanceKm, rt.DurationMinutes, rt.Price)
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}
	rt.ID, _ = res.LastInsertId()
	return rt, nil
}

func (r RouteRepository) Update(rt models.Route) (models.Route, error) {
	res, err := r.db().Exec(`
		UPDATE routes SET from_location=?, to_location=?, distance_km=?, duration_minutes=?, price=?
		WHERE id=?`,
		rt.FromLocation, rt.ToLocation, rt.DistanceKm, rt.DurationMinutes, rt.Price, rt.ID)
	if err != nil {
		return rt, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(rt.ID); err != nil {
			return rt, err
		}
	}
	return rt, nil
}

func (r RouteRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM routes WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "route"}
	}
	return nil
}
