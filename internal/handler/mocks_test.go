package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"apexgrid/internal/model"
	"apexgrid/internal/service"
	"apexgrid/internal/session"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// newFormContext builds a POST context carrying a form body plus the
// session values the middleware would normally have set.
func newFormContext(e *echo.Echo, target string, form url.Values, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session.token", "tok-test")
	if user != nil {
		c.Set("session.user", user)
	}
	return c, rec
}

func newGetContext(e *echo.Echo, target string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session.token", "tok-test")
	if user != nil {
		c.Set("session.user", user)
	}
	return c, rec
}

type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Start(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Resolve(ctx context.Context, token string) (uint, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockSessionManager) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionManager) SetFlash(ctx context.Context, token string, flash session.Flash) error {
	args := m.Called(ctx, token, flash)
	return args.Error(0)
}

func (m *MockSessionManager) PopFlash(ctx context.Context, token string) (*session.Flash, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Flash), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, confirm string) (*model.User, error) {
	args := m.Called(ctx, name, email, password, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, name string, baseCountry, principal *string) (*model.Team, error) {
	args := m.Called(ctx, name, baseCountry, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) CreateCar(ctx context.Context, in service.CreateCarInput) (*model.Car, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) DeleteCar(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarService) ListCatalogue(ctx context.Context) ([]model.CatalogueCar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogueCar), args.Error(1)
}

type MockDriverService struct {
	mock.Mock
}

func (m *MockDriverService) CreateDriver(ctx context.Context, in service.CreateDriverInput) (*model.Driver, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Driver), args.Error(1)
}

func (m *MockDriverService) DeleteDriver(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDriverService) ListRoster(ctx context.Context) ([]model.DriverEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DriverEntry), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) UpsertDriverStats(ctx context.Context, driverID uint, in service.DriverStatsInput) error {
	args := m.Called(ctx, driverID, in)
	return args.Error(0)
}

func (m *MockStatsService) UpsertCarStats(ctx context.Context, carID uint, in service.CarStatsInput) error {
	args := m.Called(ctx, carID, in)
	return args.Error(0)
}

func (m *MockStatsService) DriverStandings(ctx context.Context) ([]model.DriverStanding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DriverStanding), args.Error(1)
}

func (m *MockStatsService) CarStandings(ctx context.Context) ([]model.CarStanding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CarStanding), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Overview(ctx context.Context) (*model.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Overview), args.Error(1)
}
