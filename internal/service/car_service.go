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

const minSeasonYear = 1950

// CreateCarInput carries the raw form values for a new car. Optional
// numeric fields stay strings so parse failures surface as validation
// messages rather than bind errors.
type CreateCarInput struct {
	TeamID       uint
	Model        string
	Manufacturer *string
	SeasonYear   int
	Engine       *string
	Horsepower   *string
	ImageURL     *string
}

// CarService exposes car catalogue operations.
type CarService interface {
	CreateCar(ctx context.Context, in CreateCarInput) (*model.Car, error)
	DeleteCar(ctx context.Context, id uint) error
	ListCatalogue(ctx context.Context) ([]model.CatalogueCar, error)
}

type carService struct {
	cars  repository.CarRepository
	teams repository.TeamRepository
}

// NewCarService creates a car service.
func NewCarService(cars repository.CarRepository, teams repository.TeamRepository) CarService {
	return &carService{cars: cars, teams: teams}
}

// CreateCar validates the input and creates the car together with its
// zero-valued stats row.
func (s *carService) CreateCar(ctx context.Context, in CreateCarInput) (*model.Car, error) {
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

	if utf8.RuneCountInString(in.Model) < 2 {
		messages = append(messages, "Car model must be at least 2 characters.")
	}
	if in.SeasonYear < minSeasonYear || in.SeasonYear > time.Now().Year()+1 {
		messages = append(messages, "Please enter a realistic season year.")
	}

	var horsepower *int
	if in.Horsepower != nil {
		hp, err := strconv.Atoi(*in.Horsepower)
		if err != nil || hp < 0 {
			messages = append(messages, "Horsepower must be a non-negative number.")
		} else {
			horsepower = &hp
		}
	}

	if in.ImageURL != nil && validate.Var(*in.ImageURL, "url") != nil {
		messages = append(messages, "Image URL must be a valid URL.")
	}

	if len(messages) > 0 {
		return nil, apperrors.NewValidation(messages...)
	}

	car := &model.Car{
		TeamID:       in.TeamID,
		Model:        in.Model,
		Manufacturer: in.Manufacturer,
		SeasonYear:   in.SeasonYear,
		Engine:       in.Engine,
		Horsepower:   horsepower,
		ImageURL:     in.ImageURL,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

// DeleteCar removes a car and its stats row. Unknown ids are a no-op.
func (s *carService) DeleteCar(ctx context.Context, id uint) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

func (s *carService) ListCatalogue(ctx context.Context) ([]model.CatalogueCar, error) {
	cars, err := s.cars.ListCatalogue(ctx)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Err: err}
	}
	return cars, nil
}
