package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "apexgrid/internal/errors"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
)

const bcryptCost = 10

var validate = validator.New()

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, name, email, password, confirm string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new user with a hashed password. All validation
// failures are collected so the form can show the full list at once.
func (s *authService) Register(ctx context.Context, name, email, password, confirm string) (*model.User, error) {
	var messages []string
	if utf8.RuneCountInString(name) < 2 {
		messages = append(messages, "Name must be at least 2 characters.")
	}
	if validate.Var(email, "required,email") != nil {
		messages = append(messages, "Please enter a valid email address.")
	}
	if len(password) < 6 {
		messages = append(messages, "Password must be at least 6 characters.")
	}
	if password != confirm {
		messages = append(messages, "Password confirmation does not match.")
	}
	if len(messages) > 0 {
		return nil, apperrors.NewValidation(messages...)
	}

	// The unique index on email also protects us; checking first gives a
	// friendlier message.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidation("That email is already registered. Please login instead.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns the user. Any mismatch yields
// the same generic error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	var messages []string
	if validate.Var(email, "required,email") != nil {
		messages = append(messages, "Please enter a valid email address.")
	}
	if password == "" {
		messages = append(messages, "Please enter your password.")
	}
	if len(messages) > 0 {
		return nil, apperrors.NewValidation(messages...)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
