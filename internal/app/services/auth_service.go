package services

import (
	"context"
	"time"

	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/auth"
	"github.com/tanvir/intakeform/internal/pkg/logger"
)

// AuthService handles admin sign-in and refresh-token sessions.
type AuthService struct {
	userRepo   *repositories.AdminUserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.AdminUserRepository, tokenRepo *repositories.TokenRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and issues a token pair. An unknown email
// and a wrong password are indistinguishable to the caller; a disabled
// account gets its own error so the UI can show different messaging.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Save(ctx, refreshToken, user.Email, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("Admin signed in")

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         user,
	}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued against the current account state.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	record, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if record.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if !record.Valid(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByEmail(ctx, record.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	accessToken, newRefresh, expiresIn, err := s.jwtService.GenerateTokenPair(user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Save(ctx, newRefresh, user.Email, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    expiresIn,
		User:         user.Projection(),
	}, nil
}

// Logout revokes the presented refresh token. Access tokens stay valid until
// they expire on their own.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Revoke(ctx, refreshToken)
}
