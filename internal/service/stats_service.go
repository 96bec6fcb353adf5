package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
)

// DriverStatsInput carries the full replacement values for a driver's
// stats row.
type DriverStatsInput struct {
	Races         int
	Wins          int
	Podiums       int
	Poles         int
	Points        int
	Championships int
}

// CarStatsInput carries the full replacement values for a car's stats row.
type CarStatsInput struct {
	Races       int
	Wins        int
	Poles       int
	FastestLaps int
	Points      int
}

// StatsService exposes the statistics upserts and standings listings.
type StatsService interface {
	UpsertDriverStats(ctx context.Context, driverID uint, in DriverStatsInput) error
	UpsertCarStats(ctx context.Context, carID uint, in CarStatsInput) error
	DriverStandings(ctx context.Context) ([]model.DriverStanding, error)
	CarStandings(ctx context.Context) ([]model.CarStanding, error)
}

type statsService struct {
	stats   repository.StatsRepository
	drivers repository.DriverRepository
	cars    repository.CarRepository
}

// NewStatsService creates a stats service.
func NewStatsService(stats repository.StatsRepository, drivers repository.DriverRepository, cars repository.CarRepository) StatsService {
	return &statsService{stats: stats, drivers: drivers, cars: cars}
}

// UpsertDriverStats replaces the stats row for a driver, creating it if
// absent. Values are clamped to >= 0 here so the rule holds regardless
// of the backing store.
func (s *statsService) UpsertDriverStats(ctx context.Context, driverID uint, in DriverStatsInput) error {
	if driverID == 0 {
		return apperrors.NewValidation("Invalid driver selection.")
	}
	if _, err := s.drivers.FindByID(ctx, driverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("Invalid driver selection.")
		}
		return fmt.Errorf("find driver: %w", err)
	}

	stats := &model.DriverStats{
		DriverID:      driverID,
		Races:         clampNonNegative(in.Races),
		Wins:          clampNonNegative(in.Wins),
		Podiums:       clampNonNegative(in.Podiums),
		Poles:         clampNonNegative(in.Poles),
		Points:        clampNonNegative(in.Points),
		Championships: clampNonNegative(in.Championships),
	}
	if err := s.stats.UpsertDriverStats(ctx, stats); err != nil {
		return fmt.Errorf("upsert driver stats: %w", err)
	}
	return nil
}

// UpsertCarStats replaces the stats row for a car, creating it if absent.
func (s *statsService) UpsertCarStats(ctx context.Context, carID uint, in CarStatsInput) error {
	if carID == 0 {
		return apperrors.NewValidation("Invalid car selection.")
	}
	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("Invalid car selection.")
		}
		return fmt.Errorf("find car: %w", err)
	}

	stats := &model.CarStats{
		CarID:       carID,
		Races:       clampNonNegative(in.Races),
		Wins:        clampNonNegative(in.Wins),
		Poles:       clampNonNegative(in.Poles),
		FastestLaps: clampNonNegative(in.FastestLaps),
		Points:      clampNonNegative(in.Points),
	}
	if err := s.stats.UpsertCarStats(ctx, stats); err != nil {
		return fmt.Errorf("upsert car stats: %w", err)
	}
	return nil
}

func (s *statsService) DriverStandings(ctx context.Context) ([]model.DriverStanding, error) {
	rows, err := s.stats.DriverStandings(ctx)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Err: err}
	}
	return rows, nil
}

func (s *statsService) CarStandings(ctx context.Context) ([]model.CarStanding, error) {
	rows, err := s.stats.CarStandings(ctx)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Err: err}
	}
	return rows, nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
