package seed

import (
	"time"

	"busline/internal/domain"
	"busline/internal/logger"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// Demo inserts a small Ukrainian route catalog when the routes table is
// empty, so a fresh install has something to search against. Existing
// data is never touched.
func Demo(routes repositories.RouteRepository, log *logger.Logger) error {
	existing, err := routes.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	tomorrow := utils.FormatDate(utils.NowUTC().Add(24 * time.Hour))
	dayAfter := utils.FormatDate(utils.NowUTC().Add(48 * time.Hour))

	demo := []domain.Route{
		{Origin: "Київ", Destination: "Львів", DepartureTime: "08:00", ArrivalTime: "14:30", TravelDate: tomorrow, Price: 450, SeatsAvailable: 35, SeatsTotal: 35, Duration: "6г 30хв", Carrier: "УкрBus", BusClass: "Комфорт"},
		{Origin: "Київ", Destination: "Одеса", DepartureTime: "09:30", ArrivalTime: "17:00", TravelDate: tomorrow, Price: 500, SeatsAvailable: 28, SeatsTotal: 28, Duration: "7г 30хв", Carrier: "УкрBus", BusClass: "Комфорт"},
		{Origin: "Львів", Destination: "Київ", DepartureTime: "07:15", ArrivalTime: "13:45", TravelDate: tomorrow, Price: 450, SeatsAvailable: 40, SeatsTotal: 40, Duration: "6г 30хв", Carrier: "УкрBus", BusClass: "Стандарт"},
		{Origin: "Одеса", Destination: "Київ", DepartureTime: "06:30", ArrivalTime: "14:00", TravelDate: tomorrow, Price: 500, SeatsAvailable: 30, SeatsTotal: 30, Duration: "7г 30хв", Carrier: "УкрBus", BusClass: "Комфорт"},
		{Origin: "Харків", Destination: "Київ", DepartureTime: "07:00", ArrivalTime: "13:00", TravelDate: tomorrow, Price: 420, SeatsAvailable: 45, SeatsTotal: 45, Duration: "6г 00хв", Carrier: "УкрBus", BusClass: "Стандарт"},
		{Origin: "Київ", Destination: "Харків", DepartureTime: "10:00", ArrivalTime: "16:00", TravelDate: tomorrow, Price: 420, SeatsAvailable: 38, SeatsTotal: 38, Duration: "6г 00хв", Carrier: "УкрBus", BusClass: "Стандарт"},
		{Origin: "Дніпро", Destination: "Київ", DepartureTime: "08:30", ArrivalTime: "15:30", TravelDate: dayAfter, Price: 480, SeatsAvailable: 42, SeatsTotal: 42, Duration: "7г 00хв", Carrier: "УкрBus", BusClass: "Комфорт"},
		{Origin: "Київ", Destination: "Дніпро", DepartureTime: "11:30", ArrivalTime: "18:30", TravelDate: dayAfter, Price: 480, SeatsAvailable: 35, SeatsTotal: 35, Duration: "7г 00хв", Carrier: "УкрBus", BusClass: "Комфорт"},
	}

	for _, route := range demo {
		if _, err := routes.Create(route); err != nil {
			return err
		}
	}

	log.Infof("seed", "inserted %d demo routes", len(demo))
	return nil
}
