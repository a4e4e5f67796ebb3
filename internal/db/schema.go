package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Migrate creates the schema when missing. Statements are idempotent so
// the service can run them on every start.
func Migrate(db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	first_name VARCHAR(100) NOT NULL DEFAULT '',
	last_name VARCHAR(100) NOT NULL DEFAULT '',
	display_name VARCHAR(200) NOT NULL DEFAULT '',
	phone VARCHAR(50) NOT NULL DEFAULT '',
	photo_url VARCHAR(500) NOT NULL DEFAULT '',
	role ENUM('user','admin') NOT NULL DEFAULT 'user',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS routes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	origin VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	departure_time VARCHAR(5) NOT NULL,
	arrival_time VARCHAR(5) NOT NULL,
	travel_date VARCHAR(10) NOT NULL,
	price BIGINT NOT NULL,
	seats_available INT NOT NULL,
	seats_total INT NOT NULL,
	duration VARCHAR(50) NOT NULL DEFAULT '',
	carrier VARCHAR(100) NOT NULL DEFAULT '',
	bus_class VARCHAR(50) NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_routes_search (origin, destination, travel_date),
	KEY idx_routes_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference CHAR(36) NOT NULL,
	route_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	seat_count INT NOT NULL,
	seats VARCHAR(500) NOT NULL DEFAULT '',
	total_price BIGINT NOT NULL,
	status ENUM('pending','confirmed','cancelled','completed') NOT NULL DEFAULT 'pending',
	payment_method VARCHAR(50) NOT NULL DEFAULT '',
	passenger_first_name VARCHAR(100) NOT NULL DEFAULT '',
	passenger_last_name VARCHAR(100) NOT NULL DEFAULT '',
	passenger_email VARCHAR(255) NOT NULL DEFAULT '',
	passenger_phone VARCHAR(50) NOT NULL DEFAULT '',
	booking_date VARCHAR(30) NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_bookings_reference (reference),
	KEY idx_bookings_user (user_id, created_at),
	KEY idx_bookings_route (route_id),
	KEY idx_bookings_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	// Seat rows exist only while a booking is active; cancellation deletes
	// them, which is what frees the seat numbers for rebooking.
	`CREATE TABLE IF NOT EXISTS booking_seats (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	route_id BIGINT NOT NULL,
	seat_no INT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_route_seat (route_id, seat_no),
	KEY idx_booking_seats_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// IsDuplicateKey reports whether err is a MySQL duplicate-entry error
// (code 1062), used to turn unique-key violations into conflicts.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// IsBadConn reports a broken driver connection.
func IsBadConn(err error) bool {
	return errors.Is(err, driver.ErrBadConn)
}
