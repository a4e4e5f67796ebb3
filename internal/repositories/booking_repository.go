package repositories

import (
	"database/sql"
	"errors"

	"busline/internal/db"
	"busline/internal/domain"
	"busline/internal/utils"
)

const bookingColumns = `b.id, b.reference, b.route_id, b.user_id, b.seats,
	b.total_price, b.status, b.payment_method, b.passenger_first_name,
	b.passenger_last_name, b.passenger_email, b.passenger_phone,
	b.booking_date, b.created_at, b.updated_at`

// Nullable route columns for the LEFT JOIN; a deleted route leaves the
// booking readable with no embedded route.
const joinedRouteColumns = `r.id, r.origin, r.destination, r.departure_time,
	r.arrival_time, r.travel_date, r.price, r.seats_available, r.seats_total,
	r.duration, r.carrier, r.bus_class, r.created_at, r.updated_at`

type BookingRepository struct {
	DB *sql.DB
}

// Create reserves the seats and inserts the booking in one transaction.
// The conditional seat decrement and the unique (route_id, seat_no) key
// both run inside it, so a failed booking never leaks inventory.
func (r BookingRepository) Create(b *domain.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin tx", Err: err}
	}
	defer tx.Rollback()

	ok, err := reserveSeats(tx, b.RouteID, len(b.Seats))
	if err != nil {
		return domain.InternalError{Msg: "reserve seats", Err: err}
	}
	if !ok {
		var exists int
		if err := tx.QueryRow(`SELECT 1 FROM routes WHERE id=?`, b.RouteID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrRouteNotFound
			}
			return domain.InternalError{Msg: "check route", Err: err}
		}
		return domain.ErrInsufficientSeats
	}

	res, err := tx.Exec(`INSERT INTO bookings
		(reference, route_id, user_id, seat_count, seats, total_price, status,
		 payment_method, passenger_first_name, passenger_last_name,
		 passenger_email, passenger_phone, booking_date)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.Reference, b.RouteID, b.UserID, len(b.Seats),
		utils.FormatSeatList(b.Seats), b.TotalPrice, string(b.Status),
		b.PaymentMethod, b.Passenger.FirstName, b.Passenger.LastName,
		b.Passenger.Email, b.Passenger.Phone, b.BookingDate)
	if err != nil {
		return domain.InternalError{Msg: "insert booking", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Msg: "insert booking", Err: err}
	}

	for _, seat := range b.Seats {
		if _, err := tx.Exec(`INSERT INTO booking_seats (booking_id, route_id, seat_no)
			VALUES (?,?,?)`, id, b.RouteID, seat); err != nil {
			if db.IsDuplicateKey(err) {
				return domain.ErrSeatTaken
			}
			return domain.InternalError{Msg: "insert booking seat", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit booking", Err: err}
	}
	b.ID = id
	return nil
}

// Cancel flips the booking to cancelled, frees its seat rows and returns
// the seats to the route, all in one transaction. A booking that is
// already cancelled is left untouched and reported with released=false,
// which is what keeps double cancellation from inflating availability.
func (r BookingRepository) Cancel(id int64) (released bool, err error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, domain.InternalError{Msg: "begin tx", Err: err}
	}
	defer tx.Rollback()

	var (
		routeID   int64
		seatCount int
		status    string
	)
	err = tx.QueryRow(`SELECT route_id, seat_count, status FROM bookings
		WHERE id=? FOR UPDATE`, id).Scan(&routeID, &seatCount, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrBookingNotFound
	}
	if err != nil {
		return false, domain.InternalError{Msg: "get booking", Err: err}
	}

	if domain.BookingStatus(status) == domain.BookingStatusCancelled {
		return false, nil
	}

	if _, err = tx.Exec(`UPDATE bookings SET status=? WHERE id=?`,
		string(domain.BookingStatusCancelled), id); err != nil {
		return false, domain.InternalError{Msg: "cancel booking", Err: err}
	}
	if _, err = tx.Exec(`DELETE FROM booking_seats WHERE booking_id=?`, id); err != nil {
		return false, domain.InternalError{Msg: "free booking seats", Err: err}
	}
	// The route may have been deleted since; releasing is then a no-op.
	if err = releaseSeats(tx, routeID, seatCount); err != nil {
		return false, domain.InternalError{Msg: "release seats", Err: err}
	}

	if err = tx.Commit(); err != nil {
		return false, domain.InternalError{Msg: "commit cancel", Err: err}
	}
	return true, nil
}

// UpdateStatus sets a non-cancelled status. Cancelled bookings are
// terminal; use Cancel for the cancelling transition.
func (r BookingRepository) UpdateStatus(id int64, status domain.BookingStatus) error {
	res, err := r.DB.Exec(`UPDATE bookings SET status=? WHERE id=? AND status<>?`,
		string(status), id, string(domain.BookingStatusCancelled))
	if err != nil {
		return domain.InternalError{Msg: "update booking status", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Msg: "update booking status", Err: err}
	}
	if affected == 0 {
		var current string
		err := r.DB.QueryRow(`SELECT status FROM bookings WHERE id=?`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		if err != nil {
			return domain.InternalError{Msg: "get booking status", Err: err}
		}
		if domain.BookingStatus(current) == domain.BookingStatusCancelled {
			return domain.ConflictError{Resource: "booking", Msg: "cancelled booking cannot change status"}
		}
	}
	return nil
}

func (r BookingRepository) GetByID(id int64) (domain.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+`, `+joinedRouteColumns+`
		FROM bookings b LEFT JOIN routes r ON r.id = b.route_id
		WHERE b.id=?`, id)
	b, err := scanJoinedBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	if err != nil {
		return domain.Booking{}, domain.InternalError{Msg: "get booking", Err: err}
	}
	return b, nil
}

func (r BookingRepository) ListByUser(userID int64) ([]domain.Booking, error) {
	return r.list(`WHERE b.user_id=?`, userID)
}

func (r BookingRepository) ListAll() ([]domain.Booking, error) {
	return r.list(``)
}

func (r BookingRepository) list(where string, args ...any) ([]domain.Booking, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+`, `+joinedRouteColumns+`
		FROM bookings b LEFT JOIN routes r ON r.id = b.route_id
		`+where+` ORDER BY b.created_at DESC, b.id DESC`, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bookings", Err: err}
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanJoinedBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan booking", Err: err}
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list bookings", Err: err}
	}
	return bookings, nil
}

func scanJoinedBooking(row rowScanner) (domain.Booking, error) {
	var (
		b     domain.Booking
		seats string

		routeID   sql.NullInt64
		origin    sql.NullString
		dest      sql.NullString
		depTime   sql.NullString
		arrTime   sql.NullString
		date      sql.NullString
		price     sql.NullInt64
		seatsAvl  sql.NullInt64
		seatsTot  sql.NullInt64
		duration  sql.NullString
		carrier   sql.NullString
		busClass  sql.NullString
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID, &b.Reference, &b.RouteID, &b.UserID, &seats,
		&b.TotalPrice, &b.Status, &b.PaymentMethod,
		&b.Passenger.FirstName, &b.Passenger.LastName,
		&b.Passenger.Email, &b.Passenger.Phone,
		&b.BookingDate, &b.CreatedAt, &b.UpdatedAt,
		&routeID, &origin, &dest, &depTime, &arrTime, &date,
		&price, &seatsAvl, &seatsTot, &duration, &carrier, &busClass,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Booking{}, err
	}

	b.Seats = utils.ParseSeatList(seats)
	if routeID.Valid {
		b.Route = &domain.Route{
			ID:             routeID.Int64,
			Origin:         origin.String,
			Destination:    dest.String,
			DepartureTime:  depTime.String,
			ArrivalTime:    arrTime.String,
			TravelDate:     date.String,
			Price:          price.Int64,
			SeatsAvailable: int(seatsAvl.Int64),
			SeatsTotal:     int(seatsTot.Int64),
			Duration:       duration.String,
			Carrier:        carrier.String,
			BusClass:       busClass.String,
			CreatedAt:      createdAt.Time,
			UpdatedAt:      updatedAt.Time,
		}
	}
	return b, nil
}
