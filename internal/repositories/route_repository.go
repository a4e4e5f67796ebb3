package repositories

import (
	"database/sql"
	"errors"
	"sort"

	"busline/internal/domain"
)

const routeColumns = `id, origin, destination, departure_time, arrival_time,
	travel_date, price, seats_available, seats_total, duration, carrier,
	bus_class, created_at, updated_at`

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) List() ([]domain.Route, error) {
	rows, err := r.DB.Query(`SELECT ` + routeColumns + ` FROM routes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list routes", Err: err}
	}
	defer rows.Close()
	return scanRoutes(rows)
}

func (r RouteRepository) GetByID(id int64) (domain.Route, error) {
	row := r.DB.QueryRow(`SELECT `+routeColumns+` FROM routes WHERE id=?`, id)
	route, err := scanRoute(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Route{}, domain.ErrRouteNotFound
	}
	if err != nil {
		return domain.Route{}, domain.InternalError{Msg: "get route", Err: err}
	}
	return route, nil
}

// Search matches origin, destination and travel date by exact equality.
// No matches is an empty slice, not an error.
func (r RouteRepository) Search(origin, destination, date string) ([]domain.Route, error) {
	rows, err := r.DB.Query(`SELECT `+routeColumns+` FROM routes
		WHERE origin=? AND destination=? AND travel_date=?
		ORDER BY departure_time ASC, id ASC`, origin, destination, date)
	if err != nil {
		return nil, domain.InternalError{Msg: "search routes", Err: err}
	}
	defer rows.Close()
	return scanRoutes(rows)
}

// Cities returns every distinct origin and destination, sorted.
func (r RouteRepository) Cities() ([]string, error) {
	rows, err := r.DB.Query(`SELECT DISTINCT origin FROM routes
		UNION SELECT DISTINCT destination FROM routes`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list cities", Err: err}
	}
	defer rows.Close()

	cities := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, domain.InternalError{Msg: "scan city", Err: err}
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list cities", Err: err}
	}
	sort.Strings(cities)
	return cities, nil
}

func (r RouteRepository) Create(route domain.Route) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO routes
		(origin, destination, departure_time, arrival_time, travel_date,
		 price, seats_available, seats_total, duration, carrier, bus_class)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		route.Origin, route.Destination, route.DepartureTime, route.ArrivalTime,
		route.TravelDate, route.Price, route.SeatsAvailable, route.SeatsTotal,
		route.Duration, route.Carrier, route.BusClass)
	if err != nil {
		return 0, domain.InternalError{Msg: "create route", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "create route", Err: err}
	}
	return id, nil
}

// Update overwrites every editable field; id and created_at stay.
func (r RouteRepository) Update(id int64, route domain.Route) error {
	_, err := r.DB.Exec(`UPDATE routes SET
		origin=?, destination=?, departure_time=?, arrival_time=?, travel_date=?,
		price=?, seats_available=?, seats_total=?, duration=?, carrier=?, bus_class=?
		WHERE id=?`,
		route.Origin, route.Destination, route.DepartureTime, route.ArrivalTime,
		route.TravelDate, route.Price, route.SeatsAvailable, route.SeatsTotal,
		route.Duration, route.Carrier, route.BusClass, id)
	if err != nil {
		return domain.InternalError{Msg: "update route", Err: err}
	}
	return nil
}

// Delete removes the route only. Bookings referencing it are kept and
// render without an embedded route from then on.
func (r RouteRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM routes WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete route", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Msg: "delete route", Err: err}
	}
	if affected == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// reserveSeats decrements seats_available by n in one conditional update.
// Returns false when the route has fewer than n seats left; the guard in
// the WHERE clause is what makes concurrent bookings unable to oversell.
func reserveSeats(ex execer, routeID int64, n int) (bool, error) {
	res, err := ex.Exec(`UPDATE routes
		SET seats_available = seats_available - ?
		WHERE id=? AND seats_available >= ?`, n, routeID, n)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// releaseSeats returns n seats to the route, capped at seats_total.
func releaseSeats(ex execer, routeID int64, n int) error {
	_, err := ex.Exec(`UPDATE routes
		SET seats_available = LEAST(seats_available + ?, seats_total)
		WHERE id=?`, n, routeID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (domain.Route, error) {
	var route domain.Route
	err := row.Scan(
		&route.ID, &route.Origin, &route.Destination, &route.DepartureTime,
		&route.ArrivalTime, &route.TravelDate, &route.Price,
		&route.SeatsAvailable, &route.SeatsTotal, &route.Duration,
		&route.Carrier, &route.BusClass, &route.CreatedAt, &route.UpdatedAt,
	)
	return route, err
}

func scanRoutes(rows *sql.Rows) ([]domain.Route, error) {
	routes := []domain.Route{}
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan route", Err: err}
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "scan routes", Err: err}
	}
	return routes, nil
}
