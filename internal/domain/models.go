package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveStatuses are the statuses that count toward seat inventory.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Route is a scheduled origin/destination bus service on a specific date.
type Route struct {
	ID             int64     `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  string    `json:"departureTime"` // HH:MM
	ArrivalTime    string    `json:"arrivalTime"`   // HH:MM
	TravelDate     string    `json:"travelDate"`    // YYYY-MM-DD
	Price          int64     `json:"price"`         // integer currency units
	SeatsAvailable int       `json:"seatsAvailable"`
	SeatsTotal     int       `json:"seatsTotal"`
	Duration       string    `json:"duration"`
	Carrier        string    `json:"carrier"`
	BusClass       string    `json:"busClass"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PassengerInfo is the contact block embedded in a booking.
type PassengerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Booking is a user's reservation of seats on a route. Bookings are never
// hard-deleted; cancellation flips the status and releases the seats.
type Booking struct {
	ID            int64         `json:"id"`
	Reference     string        `json:"reference"`
	RouteID       int64         `json:"routeId"`
	UserID        int64         `json:"userId"`
	Route         *Route        `json:"route,omitempty"` // absent when the route was deleted
	Seats         []int         `json:"seats"`
	TotalPrice    int64         `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
	Passenger     PassengerInfo `json:"passengerInfo"`
	BookingDate   string        `json:"bookingDate"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DisplayName string    `json:"displayName"`
	Phone       string    `json:"phone,omitempty"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SplitDisplayName derives first/last name from a display name:
// "Олена Коваль" -> ("Олена", "Коваль"). Everything after the first
// word becomes the last name.
func SplitDisplayName(displayName string) (first, last string) {
	parts := strings.Fields(displayName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
