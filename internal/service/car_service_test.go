package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
)

func strptr(s string) *string { return &s }

func TestCarService_CreateCar(t *testing.T) {
	team := &model.Team{ID: 3, Name: "Apex Racing"}

	tests := []struct {
		name            string
		input           CreateCarInput
		setupMock       func(teams *MockTeamRepository, cars *MockCarRepository)
		wantMessagePart string
	}{
		{
			name: "valid car",
			input: CreateCarInput{
				TeamID:     3,
				Model:      "AR-01",
				SeasonYear: 2024,
				Horsepower: strptr("1000"),
			},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
				cars.On("Create", mock.Anything, mock.AnythingOfType("*model.Car")).Return(nil)
			},
		},
		{
			name:  "missing team",
			input: CreateCarInput{Model: "AR-01", SeasonYear: 2024},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
			},
			wantMessagePart: "Please select a team.",
		},
		{
			name:  "unknown team",
			input: CreateCarInput{TeamID: 99, Model: "AR-01", SeasonYear: 2024},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantMessagePart: "Please select a team.",
		},
		{
			name:  "model too short",
			input: CreateCarInput{TeamID: 3, Model: "A", SeasonYear: 2024},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
			},
			wantMessagePart: "Car model must be at least 2 characters.",
		},
		{
			name:  "season year before 1950",
			input: CreateCarInput{TeamID: 3, Model: "AR-01", SeasonYear: 1949},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
			},
			wantMessagePart: "Please enter a realistic season year.",
		},
		{
			name:  "season year too far ahead",
			input: CreateCarInput{TeamID: 3, Model: "AR-01", SeasonYear: time.Now().Year() + 2},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
			},
			wantMessagePart: "Please enter a realistic season year.",
		},
		{
			name:  "horsepower not a number",
			input: CreateCarInput{TeamID: 3, Model: "AR-01", SeasonYear: 2024, Horsepower: strptr("fast")},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
			},
			wantMessagePart: "Horsepower must be a non-negative number.",
		},
		{
			name:  "horsepower negative",
			input: CreateCarInput{TeamID: 3, Model: "AR-01", SeasonYear: 2024, Horsepower: strptr("-5")},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
			},
			wantMessagePart: "Horsepower must be a non-negative number.",
		},
		{
			name:  "image url malformed",
			input: CreateCarInput{TeamID: 3, Model: "AR-01", SeasonYear: 2024, ImageURL: strptr("not a url")},
			setupMock: func(teams *MockTeamRepository, cars *MockCarRepository) {
				teams.On("FindByID", mock.Anything, uint(3)).Return(team, nil)
			},
			wantMessagePart: "Image URL must be a valid URL.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamRepo := new(MockTeamRepository)
			carRepo := new(MockCarRepository)
			tt.setupMock(teamRepo, carRepo)

			svc := NewCarService(carRepo, teamRepo)
			car, err := svc.CreateCar(context.Background(), tt.input)

			if tt.wantMessagePart != "" {
				assert.Nil(t, car)
				var validation *apperrors.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Contains(t, validation.Messages, tt.wantMessagePart)
				carRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(3), car.TeamID)
				assert.Equal(t, "AR-01", car.Model)
				assert.Equal(t, 1000, *car.Horsepower)
				carRepo.AssertExpectations(t)
			}
		})
	}
}

func TestCarService_CreateCar_CollectsAllMessages(t *testing.T) {
	svc := NewCarService(new(MockCarRepository), new(MockTeamRepository))

	_, err := svc.CreateCar(context.Background(), CreateCarInput{Model: "A", SeasonYear: 1200})

	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Messages, 3)
}

func TestCarService_DeleteCar(t *testing.T) {
	carRepo := new(MockCarRepository)
	carRepo.On("Delete", mock.Anything, uint(11)).Return(nil)

	svc := NewCarService(carRepo, new(MockTeamRepository))
	assert.NoError(t, svc.DeleteCar(context.Background(), 11))
	carRepo.AssertExpectations(t)
}
