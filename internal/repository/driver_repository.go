package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apexgrid/internal/model"
)

// DriverRepository defines driver persistence operations.
type DriverRepository interface {
	// Create inserts the driver and its zero-valued stats row in one transaction.
	Create(ctx context.Context, driver *model.Driver) error
	// Delete removes the driver and its stats row in one transaction.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Driver, error)
	ListRoster(ctx context.Context) ([]model.DriverEntry, error)
	CountByTeam(ctx context.Context, teamID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository.
func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(driver).Error; err != nil {
			return err
		}
		driver.Stats = model.DriverStats{DriverID: driver.ID}
		return tx.Create(&driver.Stats).Error
	})
}

func (r *driverRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("driver_id = ?", id).Delete(&model.DriverStats{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Driver{}, id).Error
	})
}

func (r *driverRepository) FindByID(ctx context.Context, id uint) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

// ListRoster returns every driver joined with its team name, ordered by
// last then first name.
func (r *driverRepository) ListRoster(ctx context.Context) ([]model.DriverEntry, error) {
	var rows []model.DriverEntry
	err := r.db.WithContext(ctx).Table("drivers").
		Select("drivers.id, drivers.first_name, drivers.last_name, drivers.nationality, drivers.date_of_birth, drivers.driver_number, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = drivers.team_id").
		Order("drivers.last_name ASC, drivers.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *driverRepository) CountByTeam(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Driver{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *driverRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Driver{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
