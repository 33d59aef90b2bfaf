package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"cdms/internal/auth"
	"cdms/internal/model"
	"cdms/internal/repository"
)

// AuthResult is returned by both Register and Login: a bearer token plus the
// user it identifies. The user's password hash is excluded by serialization.
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// AuthService defines the use cases for account registration and login.
type AuthService interface {
	// Register creates an account, hashes the password, and issues a token.
	Register(ctx context.Context, email, password string, department model.Department) (*AuthResult, error)

	// Login verifies credentials and issues a fresh token.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// authService is a concrete implementation of AuthService.
type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string, department model.Department) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if department != "" && !department.Valid() {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, department)
	}

	// Fast duplicate check; the unique index backstops concurrent registrations.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Department:   department,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(stored)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: stored}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same error as a wrong password: no account enumeration.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
