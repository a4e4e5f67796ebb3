package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"busline/internal/domain"
	"busline/internal/events"
	"busline/internal/logger"
	"busline/internal/repositories"
	"busline/internal/seatlock"
	"busline/internal/utils"
)

// MaxSeatsPerBooking caps one checkout, matching the search form's
// passenger limit.
const MaxSeatsPerBooking = 5

type BookingService struct {
	BookingRepo repositories.BookingRepository
	RouteRepo   repositories.RouteRepository
	Holder      *seatlock.Holder
	Events      *events.Producer
	Log         *logger.Logger
}

type CreateBookingInput struct {
	RouteID       int64                `json:"routeId"`
	Seats         []int                `json:"seats"`
	PaymentMethod string               `json:"paymentMethod"`
	Passenger     domain.PassengerInfo `json:"passengerInfo"`
}

// Create books seats on a route for userID. The total price is computed
// here from the route's current price, never taken from the client. The
// seat reservation itself happens inside the repository transaction.
func (s BookingService) Create(userID int64, in CreateBookingInput) (domain.Booking, error) {
	seats, ok := utils.DedupeSeats(in.Seats)
	if !ok || len(seats) == 0 {
		return domain.Booking{}, domain.ValidationError{Field: "seats", Msg: "seats must be distinct positive numbers"}
	}
	if len(seats) > MaxSeatsPerBooking {
		return domain.Booking{}, domain.ValidationError{Field: "seats", Msg: fmt.Sprintf("at most %d seats per booking", MaxSeatsPerBooking)}
	}
	if err := validatePassenger(&in.Passenger); err != nil {
		return domain.Booking{}, err
	}
	if utils.TrimOrEmpty(in.PaymentMethod) == "" {
		return domain.Booking{}, domain.ValidationError{Field: "paymentMethod", Msg: "payment method is required"}
	}

	route, err := s.RouteRepo.GetByID(in.RouteID)
	if err != nil {
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		Reference:     uuid.NewString(),
		RouteID:       route.ID,
		UserID:        userID,
		Seats:         seats,
		TotalPrice:    route.Price * int64(len(seats)),
		Status:        domain.BookingStatusPending,
		PaymentMethod: utils.TrimOrEmpty(in.PaymentMethod),
		Passenger:     in.Passenger,
		BookingDate:   utils.NowUTC().Format(time.RFC3339),
	}

	if err := s.BookingRepo.Create(&booking); err != nil {
		return domain.Booking{}, err
	}

	s.Log.Infof("bookings", "booking created id=%d ref=%s route=%d seats=%d",
		booking.ID, booking.Reference, booking.RouteID, len(seats))

	// Checkout holds served their purpose once the booking exists.
	if s.Holder.Enabled() {
		_ = s.Holder.Release(context.Background(), route.ID, seats, HoldOwner(userID))
	}
	s.publish(events.TypeBookingCreated, booking)

	booking.Route = &route
	return booking, nil
}

// UpdateStatus handles the admin transition. Cancelling releases the
// booking's seats exactly once; any other transition is a plain status
// overwrite. Leaving cancelled is rejected.
func (s BookingService) UpdateStatus(id int64, status domain.BookingStatus) (domain.Booking, error) {
	if !status.Valid() {
		return domain.Booking{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}

	if status == domain.BookingStatusCancelled {
		released, err := s.BookingRepo.Cancel(id)
		if err != nil {
			return domain.Booking{}, err
		}
		if released {
			booking, err := s.BookingRepo.GetByID(id)
			if err != nil {
				return domain.Booking{}, err
			}
			s.Log.Infof("bookings", "booking cancelled id=%d ref=%s", booking.ID, booking.Reference)
			s.publish(events.TypeBookingCancelled, booking)
			return booking, nil
		}
		return s.BookingRepo.GetByID(id)
	}

	if err := s.BookingRepo.UpdateStatus(id, status); err != nil {
		return domain.Booking{}, err
	}
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	s.publish(events.TypeStatusChanged, booking)
	return booking, nil
}

// Cancel is the user-facing wrapper: only the owner (or an admin) may
// cancel, and cancel is the only transition a user can make.
func (s BookingService) Cancel(id, requesterID int64, isAdmin bool) (domain.Booking, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if booking.UserID != requesterID && !isAdmin {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return s.UpdateStatus(id, domain.BookingStatusCancelled)
}

// Get returns one booking; users only see their own, admins see all.
func (s BookingService) Get(id, requesterID int64, isAdmin bool) (domain.Booking, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if booking.UserID != requesterID && !isAdmin {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s BookingService) ListByUser(userID int64) ([]domain.Booking, error) {
	return s.BookingRepo.ListByUser(userID)
}

func (s BookingService) ListAll() ([]domain.Booking, error) {
	return s.BookingRepo.ListAll()
}

// HoldSeats places transient checkout holds. With no redis configured it
// reports success; correctness then rests on the booking transaction.
func (s BookingService) HoldSeats(ctx context.Context, routeID int64, seatNums []int, userID int64) error {
	seats, ok := utils.DedupeSeats(seatNums)
	if !ok || len(seats) == 0 {
		return domain.ValidationError{Field: "seats", Msg: "seats must be distinct positive numbers"}
	}
	if _, err := s.RouteRepo.GetByID(routeID); err != nil {
		return err
	}
	if !s.Holder.Enabled() {
		return nil
	}

	conflict, err := s.Holder.Hold(ctx, routeID, seats, HoldOwner(userID))
	if err != nil {
		return domain.InternalError{Msg: "hold seats", Err: err}
	}
	if len(conflict) > 0 {
		return domain.ConflictError{Resource: "seat", Msg: fmt.Sprintf("seat %d is being booked by someone else", conflict[0])}
	}
	return nil
}

func (s BookingService) ReleaseHolds(ctx context.Context, routeID int64, seatNums []int, userID int64) {
	if !s.Holder.Enabled() {
		return
	}
	_ = s.Holder.Release(ctx, routeID, seatNums, HoldOwner(userID))
}

// HoldOwner keys redis holds per user so a user's own holds never block
// their booking.
func HoldOwner(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

func (s BookingService) publish(eventType string, b domain.Booking) {
	if s.Events == nil {
		return
	}
	err := s.Events.Publish(events.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		Reference:  b.Reference,
		RouteID:    b.RouteID,
		UserID:     b.UserID,
		Seats:      b.Seats,
		Status:     string(b.Status),
		OccurredAt: utils.NowUTC(),
	})
	if err != nil {
		// Events are best-effort; the booking is already durable.
		s.Log.Errorf("bookings", "publish %s for booking %d failed: %v", eventType, b.ID, err)
	}
}

func validatePassenger(p *domain.PassengerInfo) error {
	p.FirstName = utils.TrimOrEmpty(p.FirstName)
	p.LastName = utils.TrimOrEmpty(p.LastName)
	p.Email = utils.TrimOrEmpty(p.Email)
	p.Phone = utils.TrimOrEmpty(p.Phone)

	switch {
	case p.FirstName == "":
		return domain.ValidationError{Field: "passengerInfo.firstName", Msg: "first name is required"}
	case p.LastName == "":
		return domain.ValidationError{Field: "passengerInfo.lastName", Msg: "last name is required"}
	case p.Email == "":
		return domain.ValidationError{Field: "passengerInfo.email", Msg: "email is required"}
	}
	return nil
}
