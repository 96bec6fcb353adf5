package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
)

// TeamService exposes team operations.
type TeamService interface {
	CreateTeam(ctx context.Context, name string, baseCountry, principal *string) (*model.Team, error)
	DeleteTeam(ctx context.Context, id uint) error
	ListTeams(ctx context.Context) ([]model.Team, error)
}

type teamService struct {
	teams   repository.TeamRepository
	cars    repository.CarRepository
	drivers repository.DriverRepository
}

// NewTeamService creates a team service.
func NewTeamService(teams repository.TeamRepository, cars repository.CarRepository, drivers repository.DriverRepository) TeamService {
	return &teamService{teams: teams, cars: cars, drivers: drivers}
}

func (s *teamService) CreateTeam(ctx context.Context, name string, baseCountry, principal *string) (*model.Team, error) {
	if utf8.RuneCountInString(name) < 2 {
		return nil, apperrors.NewValidation("Team name must be at least 2 characters.")
	}
	team := &model.Team{
		Name:        name,
		BaseCountry: baseCountry,
		Principal:   principal,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}

// DeleteTeam removes a team unless cars or drivers still reference it.
// The dependent-row lookup happens here so the rule holds on stores
// without FK enforcement; the schema-level RESTRICT is the backstop.
func (s *teamService) DeleteTeam(ctx context.Context, id uint) error {
	carCount, err := s.cars.CountByTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("count team cars: %w", err)
	}
	driverCount, err := s.drivers.CountByTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("count team drivers: %w", err)
	}
	if carCount > 0 || driverCount > 0 {
		return &apperrors.ReferentialIntegrityError{
			Message: "Could not delete team. Remove related cars and drivers first.",
		}
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Err: err}
	}
	return teams, nil
}
