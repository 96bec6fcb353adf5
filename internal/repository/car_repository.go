package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apexgrid/internal/model"
)

// CarRepository defines car persistence operations.
type CarRepository interface {
	// Create inserts the car and its zero-valued stats row in one transaction.
	Create(ctx context.Context, car *model.Car) error
	// Delete removes the car and its stats row in one transaction.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Car, error)
	ListCatalogue(ctx context.Context) ([]model.CatalogueCar, error)
	ListLatest(ctx context.Context, limit int) ([]model.CatalogueCar, error)
	CountByTeam(ctx context.Context, teamID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new car repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(car).Error; err != nil {
			return err
		}
		car.Stats = model.CarStats{CarID: car.ID}
		return tx.Create(&car.Stats).Error
	})
}

func (r *carRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", id).Delete(&model.CarStats{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Car{}, id).Error
	})
}

func (r *carRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// ListCatalogue returns every car joined with its team name, newest
// seasons first.
func (r *carRepository) ListCatalogue(ctx context.Context) ([]model.CatalogueCar, error) {
	var rows []model.CatalogueCar
	err := r.db.WithContext(ctx).Table("cars").
		Select("cars.id, cars.model, cars.manufacturer, cars.season_year, cars.engine, cars.horsepower, cars.image_url, cars.created_at, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = cars.team_id").
		Order("cars.season_year DESC, cars.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListLatest returns the most recently added cars for the dashboard preview.
func (r *carRepository) ListLatest(ctx context.Context, limit int) ([]model.CatalogueCar, error) {
	var rows []model.CatalogueCar
	err := r.db.WithContext(ctx).Table("cars").
		Select("cars.id, cars.model, cars.manufacturer, cars.season_year, cars.engine, cars.horsepower, cars.image_url, cars.created_at, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = cars.team_id").
		Order("cars.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *carRepository) CountByTeam(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Car{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Car{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
