package repositories

import (
	"database/sql"
	"strings"

	"busline/internal/domain"
)

// OverviewStats is the admin dashboard headline block. Revenue excludes
// cancelled bookings; active means pending or confirmed.
type OverviewStats struct {
	TotalRoutes    int   `json:"totalRoutes"`
	TotalBookings  int   `json:"totalBookings"`
	TotalRevenue   int64 `json:"totalRevenue"`
	ActiveBookings int   `json:"activeBookings"`
}

// PopularRoute is a route ranked by how many bookings reference it.
// Origin/destination are empty when the route has been deleted.
type PopularRoute struct {
	RouteID       int64  `json:"routeId"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	BookingsCount int    `json:"bookingsCount"`
}

type StatsRepository struct {
	DB *sql.DB
}

// activeStatusList renders domain.ActiveStatuses as a quoted SQL list.
// The values are compile-time constants, never user input.
func activeStatusList() string {
	parts := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		parts[i] = "'" + string(s) + "'"
	}
	return strings.Join(parts, ",")
}

func (r StatsRepository) Overview() (OverviewStats, error) {
	var stats OverviewStats

	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM routes`).Scan(&stats.TotalRoutes); err != nil {
		return stats, domain.InternalError{Msg: "count routes", Err: err}
	}

	err := r.DB.QueryRow(`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status <> 'cancelled' THEN total_price ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status IN (` + activeStatusList() + `) THEN 1 ELSE 0 END), 0)
		FROM bookings`).Scan(&stats.TotalBookings, &stats.TotalRevenue, &stats.ActiveBookings)
	if err != nil {
		return stats, domain.InternalError{Msg: "booking overview", Err: err}
	}
	return stats, nil
}

// StatusCounts returns booking counts per status, with all four statuses
// present even when zero.
func (r StatsRepository) StatusCounts() (map[string]int, error) {
	counts := map[string]int{
		string(domain.BookingStatusPending):   0,
		string(domain.BookingStatusConfirmed): 0,
		string(domain.BookingStatusCancelled): 0,
		string(domain.BookingStatusCompleted): 0,
	}

	rows, err := r.DB.Query(`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, domain.InternalError{Msg: "status counts", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, domain.InternalError{Msg: "scan status count", Err: err}
		}
		if _, known := counts[status]; known {
			counts[status] = n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "status counts", Err: err}
	}
	return counts, nil
}

func (r StatsRepository) PopularRoutes(limit int) ([]PopularRoute, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.DB.Query(`SELECT b.route_id,
			COALESCE(r.origin, ''), COALESCE(r.destination, ''), COUNT(*) AS cnt
		FROM bookings b LEFT JOIN routes r ON r.id = b.route_id
		GROUP BY b.route_id, r.origin, r.destination
		ORDER BY cnt DESC, b.route_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "popular routes", Err: err}
	}
	defer rows.Close()

	out := []PopularRoute{}
	for rows.Next() {
		var p PopularRoute
		if err := rows.Scan(&p.RouteID, &p.Origin, &p.Destination, &p.BookingsCount); err != nil {
			return nil, domain.InternalError{Msg: "scan popular route", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "popular routes", Err: err}
	}
	return out, nil
}
