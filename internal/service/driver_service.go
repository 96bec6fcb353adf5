package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
)

const dateOfBirthLayout = "2006-01-02"

// CreateDriverInput carries the raw form values for a new driver.
type CreateDriverInput struct {
	TeamID       uint
	FirstName    string
	LastName     string
	Nationality  *string
	DateOfBirth  *string
	DriverNumber *string
}

// DriverService exposes driver roster operations.
type DriverService interface {
	CreateDriver(ctx context.Context, in CreateDriverInput) (*model.Driver, error)
	DeleteDriver(ctx context.Context, id uint) error
	ListRoster(ctx context.Context) ([]model.DriverEntry, error)
}

type driverService struct {
	drivers repository.DriverRepository
	teams   repository.TeamRepository
}

// NewDriverService creates a driver service.
func NewDriverService(drivers repository.DriverRepository, teams repository.TeamRepository) DriverService {
	return &driverService{drivers: drivers, teams: teams}
}

// CreateDriver validates the input and creates the driver together with
// its zero-valued stats row.
func (s *driverService) CreateDriver(ctx context.Context, in CreateDriverInput) (*model.Driver, error) {
	var messages []string

	if in.TeamID == 0 {
		messages = append(messages, "Please select a team.")
	} else if _, err := s.teams.FindByID(ctx, in.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			messages = append(messages, "Please select a team.")
		} else {
			return nil, fmt.Errorf("find team: %w", err)
		}
	}

	if utf8.RuneCountInString(in.FirstName) < 2 {
		messages = append(messages, "First name must be at least 2 characters.")
	}
	if utf8.RuneCountInString(in.LastName) < 2 {
		messages = append(messages, "Last name must be at least 2 characters.")
	}

	var driverNumber *int
	if in.DriverNumber != nil {
		num, err := strconv.Atoi(*in.DriverNumber)
		if err != nil || num < 0 {
			messages = append(messages, "Driver number must be a non-negative number.")
		} else {
			driverNumber = &num
		}
	}

	// Strict calendar date: the value must round-trip exactly, so
	// 2024-02-30 or 2024-2-3 are rejected.
	var dateOfBirth *time.Time
	if in.DateOfBirth != nil {
		parsed, err := time.Parse(dateOfBirthLayout, *in.DateOfBirth)
		if err != nil || parsed.Format(dateOfBirthLayout) != *in.DateOfBirth {
			messages = append(messages, "Date of birth must be a valid date in YYYY-MM-DD format.")
		} else {
			dateOfBirth = &parsed
		}
	}

	if len(messages) > 0 {
		return nil, apperrors.NewValidation(messages...)
	}

	driver := &model.Driver{
		TeamID:       in.TeamID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Nationality:  in.Nationality,
		DateOfBirth:  dateOfBirth,
		DriverNumber: driverNumber,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	return driver, nil
}

// DeleteDriver removes a driver and its stats row. Unknown ids are a no-op.
func (s *driverService) DeleteDriver(ctx context.Context, id uint) error {
	if err := s.drivers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	return nil
}

func (s *driverService) ListRoster(ctx context.Context) ([]model.DriverEntry, error) {
	drivers, err := s.drivers.ListRoster(ctx)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Err: err}
	}
	return drivers, nil
}
