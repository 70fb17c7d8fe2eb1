package repositories

import (
	"database/sql"

	intconfig "busreservation/internal/config"
	"busreservation/internal/domain"
	"busreservation/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, full_name, email, phone, password_hash, role, created_at
		FROM users WHERE email=? LIMIT 1`, email).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &hash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, "", domain.InternalError{Err: err}
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, full_name, email, phone, role, created_at
		FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepository) Create(u models.User, passwordHash string) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (full_name, email, phone, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.FullName, u.Email, u.Phone, passwordHash, u.Role, u.CreatedAt)
	if err != nil {
		if isDuplicate(err) {
			return u, domain.ConflictError{Resource: "user", Msg: "email or phone already registered"}
		}
		return u, domain.InternalError{Err: err}
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}

func (r UserRepository) UpdateProfile(id int64, fullName, phone string) (models.User, error) {
	sets := ""
	args := []any{}
	if fullName != "" {
		sets = "full_name=?"
		args = append(args, fullName)
	}
	if phone != "" {
		if sets != "" {
			sets += ", "
		}
		sets += "phone=?"
		args = append(args, phone)
	}
	if sets == "" {
		return r.GetByID(id)
	}
	args = append(args, id)

	if _, err := r.db().Exec(`UPDATE users SET `+sets+` WHERE id=?`, args...); err != nil {
		if isDuplicate(err) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "phone already registered"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}
