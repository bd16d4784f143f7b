// File: internal/user/service.go
package user

import (
	"context"
	"errors"

	"synapse_backend/internal/auth"
	"synapse_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for user-related business logic.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, tokens *auth.TokenService, logger *zap.Logger) Service {
	return &service{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a new user after checking email uniqueness.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); !ok || apiErr.Code != common.ErrNotFound.Code {
			s.logger.Error("Failed to check for existing user", zap.Error(err), zap.String("email", req.Email))
			return nil, common.ErrInternalServer.WithDetails("Could not verify email availability.")
		}
	}
	if existing != nil {
		return nil, common.ErrConflict.WithDetails("User with this email already exists.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not process registration.")
	}

	newUser := &User{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.logger.Info("User registered", zap.String("userID", newUser.ID.String()))
	return newUser, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error so credentials cannot be probed.
func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	invalidCreds := common.ErrUnauthorized.WithDetails("Invalid credentials.")

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok && apiErr.Code == common.ErrNotFound.Code {
			return "", invalidCreds
		}
		s.logger.Error("Failed to look up user for login", zap.Error(err))
		return "", common.ErrInternalServer.WithDetails("Could not process login.")
	}

	if !auth.CheckPasswordHash(req.Password, u.PasswordHash) {
		return "", invalidCreds
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err), zap.String("userID", u.ID.String()))
		return "", common.ErrInternalServer.WithDetails("Could not issue token.")
	}
	return token, nil
}

// GetByID retrieves a user by their ID.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var apiErr *common.APIError
		if !errors.As(err, &apiErr) {
			s.logger.Error("Failed to find user", zap.Error(err), zap.String("userID", id.String()))
		}
		return nil, err
	}
	return u, nil
}
