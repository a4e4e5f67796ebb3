package services

import (
	"busline/internal/domain"
	"busline/internal/logger"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// FallbackCities keeps the search form usable before any routes exist.
var FallbackCities = []string{"Дніпро", "Київ", "Львів", "Одеса", "Харків"}

type RouteService struct {
	RouteRepo repositories.RouteRepository
	Log       *logger.Logger
}

func (s RouteService) List() ([]domain.Route, error) {
	return s.RouteRepo.List()
}

func (s RouteService) Get(id int64) (domain.Route, error) {
	return s.RouteRepo.GetByID(id)
}

// Search validates the query before touching the store: both cities must
// be chosen and distinct, the date well-formed.
func (s RouteService) Search(origin, destination, date string) ([]domain.Route, error) {
	origin = utils.NormalizeCity(origin)
	destination = utils.NormalizeCity(destination)
	date = utils.TrimOrEmpty(date)

	if origin == "" {
		return nil, domain.ValidationError{Field: "origin", Msg: "origin city is required"}
	}
	if destination == "" {
		return nil, domain.ValidationError{Field: "destination", Msg: "destination city is required"}
	}
	if origin == destination {
		return nil, domain.ValidationError{Field: "destination", Msg: "origin and destination must differ"}
	}
	if !utils.ValidDate(date) {
		return nil, domain.ValidationError{Field: "date", Msg: "date must be YYYY-MM-DD"}
	}

	return s.RouteRepo.Search(origin, destination, date)
}

// Cities substitutes the fallback list when the store has none or fails,
// so the search form never renders empty dropdowns.
func (s RouteService) Cities() []string {
	cities, err := s.RouteRepo.Cities()
	if err != nil {
		s.Log.Errorf("routes", "city list failed, using fallback: %v", err)
		return append([]string(nil), FallbackCities...)
	}
	if len(cities) == 0 {
		return append([]string(nil), FallbackCities...)
	}
	return cities
}

func (s RouteService) Create(route domain.Route) (domain.Route, error) {
	if err := validateRoute(&route); err != nil {
		return domain.Route{}, err
	}
	id, err := s.RouteRepo.Create(route)
	if err != nil {
		return domain.Route{}, err
	}
	s.Log.Infof("routes", "route created id=%d %s -> %s %s", id, route.Origin, route.Destination, route.TravelDate)
	return s.RouteRepo.GetByID(id)
}

func (s RouteService) Update(id int64, route domain.Route) (domain.Route, error) {
	if err := validateRoute(&route); err != nil {
		return domain.Route{}, err
	}
	if _, err := s.RouteRepo.GetByID(id); err != nil {
		return domain.Route{}, err
	}
	if err := s.RouteRepo.Update(id, route); err != nil {
		return domain.Route{}, err
	}
	return s.RouteRepo.GetByID(id)
}

func (s RouteService) Delete(id int64) error {
	if err := s.RouteRepo.Delete(id); err != nil {
		return err
	}
	s.Log.Infof("routes", "route deleted id=%d", id)
	return nil
}

func validateRoute(route *domain.Route) error {
	route.Origin = utils.NormalizeCity(route.Origin)
	route.Destination = utils.NormalizeCity(route.Destination)
	route.TravelDate = utils.TrimOrEmpty(route.TravelDate)
	route.DepartureTime = utils.TrimOrEmpty(route.DepartureTime)
	route.ArrivalTime = utils.TrimOrEmpty(route.ArrivalTime)
	route.Carrier = utils.TrimOrEmpty(route.Carrier)
	route.BusClass = utils.TrimOrEmpty(route.BusClass)
	route.Duration = utils.TrimOrEmpty(route.Duration)

	switch {
	case route.Origin == "":
		return domain.ValidationError{Field: "origin", Msg: "origin city is required"}
	case route.Destination == "":
		return domain.ValidationError{Field: "destination", Msg: "destination city is required"}
	case route.Origin == route.Destination:
		return domain.ValidationError{Field: "destination", Msg: "origin and destination must differ"}
	case !utils.ValidDate(route.TravelDate):
		return domain.ValidationError{Field: "travelDate", Msg: "date must be YYYY-MM-DD"}
	case !utils.ValidClock(route.DepartureTime):
		return domain.ValidationError{Field: "departureTime", Msg: "time must be HH:MM"}
	case !utils.ValidClock(route.ArrivalTime):
		return domain.ValidationError{Field: "arrivalTime", Msg: "time must be HH:MM"}
	case route.Price <= 0:
		return domain.ValidationError{Field: "price", Msg: "price must be positive"}
	case route.SeatsTotal <= 0:
		return domain.ValidationError{Field: "seatsTotal", Msg: "total seats must be positive"}
	case route.SeatsAvailable < 0 || route.SeatsAvailable > route.SeatsTotal:
		return domain.ValidationError{Field: "seatsAvailable", Msg: "available seats out of range"}
	}
	return nil
}
