package services

import "busline/internal/repositories"

type StatsService struct {
	StatsRepo repositories.StatsRepository
}

func (s StatsService) Overview() (repositories.OverviewStats, error) {
	return s.StatsRepo.Overview()
}

func (s StatsService) StatusCounts() (map[string]int, error) {
	return s.StatsRepo.StatusCounts()
}

func (s StatsService) PopularRoutes(limit int) ([]repositories.PopularRoute, error) {
	return s.StatsRepo.PopularRoutes(limit)
}
