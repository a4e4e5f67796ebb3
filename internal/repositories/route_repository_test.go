package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"busline/internal/domain"
)

func routeRows(t *testing.T, routes ...domain.Route) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{
		"id", "origin", "destination", "departure_time", "arrival_time",
		"travel_date", "price", "seats_available", "seats_total",
		"duration", "carrier", "bus_class", "created_at", "updated_at",
	})
	now := time.Now().UTC()
	for _, r := range routes {
		rows.AddRow(r.ID, r.Origin, r.Destination, r.DepartureTime, r.ArrivalTime,
			r.TravelDate, r.Price, r.SeatsAvailable, r.SeatsTotal,
			r.Duration, r.Carrier, r.BusClass, now, now)
	}
	return rows
}

func TestSearch_ReturnsMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM routes").
		WithArgs("Київ", "Львів", "2026-09-01").
		WillReturnRows(routeRows(t, domain.Route{
			ID: 1, Origin: "Київ", Destination: "Львів",
			DepartureTime: "08:00", ArrivalTime: "14:30",
			TravelDate: "2026-09-01", Price: 450,
			SeatsAvailable: 35, SeatsTotal: 35,
			Duration: "6г 30хв", Carrier: "УкрBus", BusClass: "Комфорт",
		}))

	routes, err := (RouteRepository{DB: db}).Search("Київ", "Львів", "2026-09-01")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(routes) != 1 || routes[0].Origin != "Київ" {
		t.Fatalf("unexpected result: %+v", routes)
	}
}

func TestSearch_NoMatchesIsEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM routes").
		WithArgs("Київ", "Ужгород", "2026-09-01").
		WillReturnRows(routeRows(t))

	routes, err := (RouteRepository{DB: db}).Search("Київ", "Ужгород", "2026-09-01")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if routes == nil || len(routes) != 0 {
		t.Fatalf("expected empty slice, got %v", routes)
	}
}

func TestGetRouteByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM routes WHERE id=").
		WithArgs(int64(99)).
		WillReturnRows(routeRows(t))

	_, err = (RouteRepository{DB: db}).GetByID(99)
	if !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected route not found, got %v", err)
	}
}

func TestCities_SortedUnion(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT DISTINCT origin FROM routes").
		WillReturnRows(sqlmock.NewRows([]string{"origin"}).
			AddRow("Львів").AddRow("Київ").AddRow("Одеса"))

	cities, err := (RouteRepository{DB: db}).Cities()
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	want := []string{"Київ", "Львів", "Одеса"}
	if len(cities) != len(want) {
		t.Fatalf("unexpected cities: %v", cities)
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Fatalf("cities not sorted, got %v", cities)
		}
	}
}

func TestDeleteRoute_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM routes").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = (RouteRepository{DB: db}).Delete(99)
	if !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected route not found, got %v", err)
	}
}

func TestReleaseSeats_CappedAtTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("LEAST\\(seats_available \\+ \\?, seats_total\\)").
		WithArgs(4, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := releaseSeats(db, 3, 4); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
