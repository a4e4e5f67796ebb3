package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"busline/internal/domain"
	"busline/internal/logger"
	"busline/internal/repositories"
)

func newRouteService(t *testing.T) (RouteService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := RouteService{
		RouteRepo: repositories.RouteRepository{DB: db},
		Log:       logger.New(false),
	}
	return svc, mock, func() { db.Close() }
}

func TestSearchValidation(t *testing.T) {
	svc, _, done := newRouteService(t)
	defer done()

	cases := []struct {
		name                      string
		origin, destination, date string
	}{
		{"missing origin", "", "Львів", "2026-09-01"},
		{"missing destination", "Київ", "", "2026-09-01"},
		{"same city", "Київ", "Київ", "2026-09-01"},
		{"bad date", "Київ", "Львів", "01.09.2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Search(tc.origin, tc.destination, tc.date)
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSearchNormalizesCityWhitespace(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	mock.ExpectQuery("FROM routes").
		WithArgs("Київ", "Львів", "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "origin", "destination", "departure_time", "arrival_time",
			"travel_date", "price", "seats_available", "seats_total",
			"duration", "carrier", "bus_class", "created_at", "updated_at",
		}))

	if _, err := svc.Search("  Київ ", " Львів  ", "2026-09-01"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCities_FallbackOnError(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	mock.ExpectQuery("SELECT DISTINCT origin FROM routes").
		WillReturnError(errDummy{})

	cities := svc.Cities()
	if len(cities) != len(FallbackCities) {
		t.Fatalf("expected fallback list, got %v", cities)
	}
	if cities[0] != "Дніпро" {
		t.Fatalf("fallback list out of order: %v", cities)
	}
}

func TestCities_FallbackOnEmptyStore(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	mock.ExpectQuery("SELECT DISTINCT origin FROM routes").
		WillReturnRows(sqlmock.NewRows([]string{"origin"}))

	cities := svc.Cities()
	if len(cities) != len(FallbackCities) {
		t.Fatalf("expected fallback list, got %v", cities)
	}
}

func TestValidateRoute(t *testing.T) {
	base := domain.Route{
		Origin: "Київ", Destination: "Львів",
		DepartureTime: "08:00", ArrivalTime: "14:30",
		TravelDate: "2026-09-01", Price: 450,
		SeatsAvailable: 35, SeatsTotal: 35,
		Carrier: "УкрBus", BusClass: "Комфорт", Duration: "6г 30хв",
	}

	cases := []struct {
		name   string
		mutate func(*domain.Route)
	}{
		{"zero price", func(r *domain.Route) { r.Price = 0 }},
		{"zero seats", func(r *domain.Route) { r.SeatsTotal = 0 }},
		{"available above total", func(r *domain.Route) { r.SeatsAvailable = 40 }},
		{"bad departure time", func(r *domain.Route) { r.DepartureTime = "8am" }},
		{"same cities", func(r *domain.Route) { r.Destination = "Київ" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route := base
			tc.mutate(&route)
			if err := validateRoute(&route); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	route := base
	if err := validateRoute(&route); err != nil {
		t.Fatalf("valid route rejected: %v", err)
	}
}

type errDummy struct{}

func (errDummy) Error() string { return "boom" }
