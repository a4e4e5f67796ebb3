package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOverview_RevenueExcludesCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM routes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery("FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"total", "revenue", "active"}).
			AddRow(12, 5400, 9))

	stats, err := (StatsRepository{DB: db}).Overview()
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if stats.TotalRoutes != 8 || stats.TotalBookings != 12 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 5400 || stats.ActiveBookings != 9 {
		t.Fatalf("unexpected aggregates: %+v", stats)
	}
}

func TestStatusCounts_AllStatusesPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).AddRow("cancelled", 1))

	counts, err := (StatsRepository{DB: db}).StatusCounts()
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(counts) != 4 {
		t.Fatalf("all four statuses must be present, got %v", counts)
	}
	if counts["pending"] != 3 || counts["cancelled"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if counts["confirmed"] != 0 || counts["completed"] != 0 {
		t.Fatalf("missing statuses must be zero, got %v", counts)
	}
}

func TestPopularRoutes_DeletedRouteHasEmptyCities(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("ORDER BY cnt DESC").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"route_id", "origin", "destination", "cnt"}).
			AddRow(3, "Київ", "Львів", 7).
			AddRow(9, "", "", 2))

	routes, err := (StatsRepository{DB: db}).PopularRoutes(0)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("unexpected result: %+v", routes)
	}
	if routes[1].Origin != "" || routes[1].BookingsCount != 2 {
		t.Fatalf("deleted route row scanned wrong: %+v", routes[1])
	}
}
