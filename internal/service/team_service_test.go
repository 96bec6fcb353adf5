package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
)

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("creates team", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		teamRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Team")).Return(nil)

		svc := NewTeamService(teamRepo, new(MockCarRepository), new(MockDriverRepository))
		country := "UK"
		team, err := svc.CreateTeam(context.Background(), "Apex Racing", &country, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Apex Racing", team.Name)
		assert.Equal(t, "UK", *team.BaseCountry)
		assert.Nil(t, team.Principal)
		teamRepo.AssertExpectations(t)
	})

	t.Run("rejects short name", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		svc := NewTeamService(teamRepo, new(MockCarRepository), new(MockDriverRepository))

		team, err := svc.CreateTeam(context.Background(), "A", nil, nil)

		assert.Nil(t, team)
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Messages, "Team name must be at least 2 characters.")
		teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	tests := []struct {
		name        string
		carCount    int64
		driverCount int64
		wantBlocked bool
	}{
		{name: "unreferenced team deletes", carCount: 0, driverCount: 0},
		{name: "blocked by cars", carCount: 2, wantBlocked: true},
		{name: "blocked by drivers", driverCount: 1, wantBlocked: true},
		{name: "blocked by both", carCount: 1, driverCount: 1, wantBlocked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamRepo := new(MockTeamRepository)
			carRepo := new(MockCarRepository)
			driverRepo := new(MockDriverRepository)

			carRepo.On("CountByTeam", mock.Anything, uint(7)).Return(tt.carCount, nil)
			if tt.carCount == 0 {
				driverRepo.On("CountByTeam", mock.Anything, uint(7)).Return(tt.driverCount, nil)
			} else {
				driverRepo.On("CountByTeam", mock.Anything, uint(7)).Return(tt.driverCount, nil).Maybe()
			}
			if !tt.wantBlocked {
				teamRepo.On("Delete", mock.Anything, uint(7)).Return(nil)
			}

			svc := NewTeamService(teamRepo, carRepo, driverRepo)
			err := svc.DeleteTeam(context.Background(), 7)

			if tt.wantBlocked {
				var referential *apperrors.ReferentialIntegrityError
				assert.ErrorAs(t, err, &referential)
				teamRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				teamRepo.AssertExpectations(t)
			}
		})
	}
}

func TestTeamService_ListTeams(t *testing.T) {
	t.Run("orders come from the store", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		teamRepo.On("List", mock.Anything).Return([]model.Team{{Name: "Apex Racing"}, {Name: "Vortex Motorsport"}}, nil)

		svc := NewTeamService(teamRepo, new(MockCarRepository), new(MockDriverRepository))
		teams, err := svc.ListTeams(context.Background())

		assert.NoError(t, err)
		assert.Len(t, teams, 2)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		teamRepo := new(MockTeamRepository)
		teamRepo.On("List", mock.Anything).Return(nil, errors.New("table 'apexgrid.teams' doesn't exist"))

		svc := NewTeamService(teamRepo, new(MockCarRepository), new(MockDriverRepository))
		teams, err := svc.ListTeams(context.Background())

		assert.Nil(t, teams)
		var unavailable *apperrors.StoreUnavailableError
		assert.ErrorAs(t, err, &unavailable)
	})
}
