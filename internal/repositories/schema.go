package repositories

import "database/sql"

// Each service ensures its own tables at startup. DDL is idempotent.

func EnsureTripSchema(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS buses (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	bus_name VARCHAR(100) NOT NULL,
	bus_number VARCHAR(50) NOT NULL,
	bus_type VARCHAR(20) NOT NULL DEFAULT 'NON_AC',
	total_seats INT NOT NULL,
	UNIQUE KEY uniq_bus_number (bus_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS routes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	from_location VARCHAR(100) NOT NULL,
	to_location VARCHAR(100) NOT NULL,
	distance_km INT NOT NULL DEFAULT 0,
	duration_minutes INT NOT NULL DEFAULT 0,
	price BIGINT NOT NULL,
	KEY idx_route_endpoints (from_location, to_location)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS schedules (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	bus_id BIGINT NOT NULL,
	route_id BIGINT NOT NULL,
	travel_date DATE NOT NULL,
	departure TIME NOT NULL,
	arrival TIME NOT NULL,
	available_seats INT NOT NULL,
	UNIQUE KEY uniq_bus_travel_date (bus_id, travel_date),
	KEY idx_schedule_route (route_id),
	CONSTRAINT fk_schedule_bus FOREIGN KEY (bus_id) REFERENCES buses(id),
	CONSTRAINT fk_schedule_route FOREIGN KEY (route_id) REFERENCES routes(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}
	return execAll(db, ddl)
}

func EnsureBookingSchema(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference CHAR(36) NOT NULL,
	user_id BIGINT NOT NULL,
	schedule_id BIGINT NOT NULL,
	booking_time DATETIME NOT NULL,
	total_amount BIGINT NOT NULL,
	no_of_seats INT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'CONFIRMED',
	UNIQUE KEY uniq_booking_reference (reference),
	KEY idx_booking_user (user_id),
	KEY idx_booking_schedule (schedule_id, status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS passengers (
	passenger_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	passenger_name VARCHAR(100) NOT NULL,
	age INT NOT NULL,
	gender VARCHAR(10) NOT NULL,
	seat_number INT NOT NULL,
	UNIQUE KEY uniq_booking_seat (booking_id, seat_number),
	KEY idx_passenger_booking (booking_id),
	CONSTRAINT fk_passenger_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS cancellations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	cancel_date DATETIME NOT NULL,
	refund_amount BIGINT NOT NULL,
	refund_percent DECIMAL(5,2) NOT NULL,
	UNIQUE KEY uniq_cancellation_booking (booking_id),
	CONSTRAINT fk_cancellation_booking FOREIGN KEY (booking_id) REFERENCES bookings(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}
	return execAll(db, ddl)
}

func EnsureUserSchema(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	full_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(20) NOT NULL,
	password_hash VARCHAR(100) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'USER',
	created_at DATETIME NOT NULL,
	UNIQUE KEY uniq_user_email (email),
	UNIQUE KEY uniq_user_phone (phone)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}
	return execAll(db, ddl)
}

func execAll(db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
