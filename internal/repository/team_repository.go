package repository

import (
	"context"

	"gorm.io/gorm"

	"apexgrid/internal/model"
)

// TeamRepository defines team persistence operations.
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	FindByID(ctx context.Context, id uint) (*model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) FindByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns all teams ordered by name.
func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Delete removes a team row. Deleting an id that does not exist is a no-op.
// The schema-level FK RESTRICT is the backstop; the service checks for
// dependent cars and drivers before calling this.
func (r *teamRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Team{}, id).Error
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Team{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
