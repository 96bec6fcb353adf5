package service

import (
	"context"
	"encoding/json"
	"time"

	"apexgrid/internal/cache"
	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
)

const (
	overviewCacheKey = "dashboard:overview"
	overviewCacheTTL = time.Minute
	latestCarsLimit  = 6
)

// DashboardService builds the overview page data.
type DashboardService interface {
	// Overview returns the KPI counts and latest cars. When the store is
	// not ready it returns a zero-valued overview together with a
	// StoreUnavailableError so the page can still render.
	Overview(ctx context.Context) (*model.Overview, error)
}

type dashboardService struct {
	teams   repository.TeamRepository
	cars    repository.CarRepository
	drivers repository.DriverRepository
	cache   *cache.Client
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(teams repository.TeamRepository, cars repository.CarRepository, drivers repository.DriverRepository, cache *cache.Client) DashboardService {
	return &dashboardService{teams: teams, cars: cars, drivers: drivers, cache: cache}
}

func (s *dashboardService) Overview(ctx context.Context) (*model.Overview, error) {
	if data, _ := s.cache.Get(ctx, overviewCacheKey); data != nil {
		var cached model.Overview
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	overview := &model.Overview{LatestCars: []model.CatalogueCar{}}

	teamCount, err := s.teams.Count(ctx)
	if err != nil {
		return overview, &apperrors.StoreUnavailableError{Err: err}
	}
	carCount, err := s.cars.Count(ctx)
	if err != nil {
		return overview, &apperrors.StoreUnavailableError{Err: err}
	}
	driverCount, err := s.drivers.Count(ctx)
	if err != nil {
		return overview, &apperrors.StoreUnavailableError{Err: err}
	}
	latest, err := s.cars.ListLatest(ctx, latestCarsLimit)
	if err != nil {
		return overview, &apperrors.StoreUnavailableError{Err: err}
	}

	overview.TeamCount = teamCount
	overview.CarCount = carCount
	overview.DriverCount = driverCount
	overview.LatestCars = latest

	if payload, err := json.Marshal(overview); err == nil {
		_ = s.cache.Set(ctx, overviewCacheKey, payload, overviewCacheTTL)
	}
	return overview, nil
}
