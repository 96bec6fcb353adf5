package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apexgrid/internal/model"
)

// StatsRepository defines statistics persistence operations. Upserts are
// keyed by the unique owning-entity id, so calling them twice with the
// same values leaves a single identical row.
type StatsRepository interface {
	UpsertDriverStats(ctx context.Context, stats *model.DriverStats) error
	UpsertCarStats(ctx context.Context, stats *model.CarStats) error
	DriverStandings(ctx context.Context) ([]model.DriverStanding, error)
	CarStandings(ctx context.Context) ([]model.CarStanding, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) UpsertDriverStats(ctx context.Context, stats *model.DriverStats) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"races", "wins", "podiums", "poles", "points", "championships", "updated_at"}),
	}).Create(stats).Error
}

func (r *statsRepository) UpsertCarStats(ctx context.Context, stats *model.CarStats) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "car_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"races", "wins", "poles", "fastest_laps", "points", "updated_at"}),
	}).Create(stats).Error
}

// DriverStandings lists every driver with its stats, zero values when no
// stats row exists yet, best points first.
func (r *statsRepository) DriverStandings(ctx context.Context) ([]model.DriverStanding, error) {
	var rows []model.DriverStanding
	err := r.db.WithContext(ctx).Table("drivers").
		Select("drivers.id AS driver_id, CONCAT(drivers.first_name, ' ', drivers.last_name) AS driver_name, teams.name AS team_name, COALESCE(driver_stats.races, 0) AS races, COALESCE(driver_stats.wins, 0) AS wins, COALESCE(driver_stats.podiums, 0) AS podiums, COALESCE(driver_stats.poles, 0) AS poles, COALESCE(driver_stats.points, 0) AS points, COALESCE(driver_stats.championships, 0) AS championships").
		Joins("JOIN teams ON teams.id = drivers.team_id").
		Joins("LEFT JOIN driver_stats ON driver_stats.driver_id = drivers.id").
		Order("points DESC, drivers.last_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CarStandings lists every car with its stats, zero values when no stats
// row exists yet, best points first.
func (r *statsRepository) CarStandings(ctx context.Context) ([]model.CarStanding, error) {
	var rows []model.CarStanding
	err := r.db.WithContext(ctx).Table("cars").
		Select("cars.id AS car_id, cars.model, cars.season_year, teams.name AS team_name, COALESCE(car_stats.races, 0) AS races, COALESCE(car_stats.wins, 0) AS wins, COALESCE(car_stats.poles, 0) AS poles, COALESCE(car_stats.fastest_laps, 0) AS fastest_laps, COALESCE(car_stats.points, 0) AS points").
		Joins("JOIN teams ON teams.id = cars.team_id").
		Joins("LEFT JOIN car_stats ON car_stats.car_id = cars.id").
		Order("points DESC, cars.season_year DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
