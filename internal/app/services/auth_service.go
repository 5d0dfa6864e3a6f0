package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/auth"
	"github.com/yigit/injurydesk/internal/pkg/validation"
)

// AuthService handles sign-up, sign-in and session resolution
type AuthService struct {
	gw         *repositories.Gateway
	jwtService *auth.JWTService
	now        Clock
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(gw *repositories.Gateway, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		gw:         gw,
		jwtService: jwtService,
		now:        utcNow,
		logger:     logger,
	}
}

// validatePassword requires at least 8 characters with a letter and a digit
func validatePassword(password string) error {
	if len(password) < validation.PasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}

	var hasLetter, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must contain at least one letter and one digit")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// SignUp registers a student or practitioner and signs them in
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "invalid email format")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		FullName: strings.TrimSpace(req.FullName),
		RoleType: req.RoleType,
	}
	switch req.RoleType {
	case models.RoleStudent:
		user.Sport = optional(req.Sport)
	case models.RolePractitioner:
		user.Specialization = optional(req.Specialization)
	default:
		return nil, apperrors.NewValidationError("roleType must be student or practitioner")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hash

	created, err := s.gw.Users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "an account with this email already exists")
		}
		s.logger.Error().Err(err).Str("email", email).Msg("Error creating user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("userID", created.ID).Str("role", string(created.RoleType)).Msg("User signed up")
	return s.authResponse(&created)
}

// SignIn checks credentials and issues a token pair
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error) {
	if err := s.gw.Simulate(ctx); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	users, err := s.gw.Users.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{repositories.Eq("email", email)},
		Limit: 1,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Error finding user by email")
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if len(users) == 0 || !auth.CheckPassword(users[0].Password, req.Password) {
		s.logger.Debug().Str("email", email).Msg("Sign-in rejected")
		return nil, apperrors.ErrInvalidCredentials
	}
	user := users[0]

	// best effort; the fixture store rejects updates
	now := s.now()
	if _, err := s.gw.Users.Update(ctx, user.ID, repositories.Changes{"last_login_at": now}); err != nil {
		if !errors.Is(err, apperrors.ErrBackendRequired) {
			s.logger.Warn().Err(err).Str("userID", user.ID).Msg("Failed to record last login")
		}
	} else {
		user.LastLoginAt = &now
	}

	return s.authResponse(&user)
}

// Refresh exchanges a refresh token for a new pair. The user is reloaded so a
// role change takes effect on the next refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(refreshToken, auth.KindRefresh)
	if err != nil {
		return nil, tokenError(err)
	}

	user, err := s.gw.Users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return s.authResponse(&user)
}

// Authenticate resolves an access token into a session
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (appauth.Session, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(accessToken, auth.KindAccess)
	if err != nil {
		return appauth.Session{}, tokenError(err)
	}

	user, err := s.gw.Users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return appauth.Session{}, apperrors.ErrTokenInvalid
		}
		return appauth.Session{}, fmt.Errorf("error loading user: %w", err)
	}

	role, err := appauth.RoleFromUser(&user)
	if err != nil {
		return appauth.Session{}, err
	}
	return appauth.Session{UserID: user.ID, Email: user.Email, Role: role}, nil
}

// Me returns the session's user
func (s *AuthService) Me(ctx context.Context, session appauth.Session) (*dto.UserSummary, error) {
	user, err := s.gw.Users.Get(ctx, session.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "user not found")
	}
	summary := dto.NewUserSummary(user)
	return &summary, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Error generating tokens")
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	return &dto.AuthResponse{
		User: dto.NewUserSummary(*user),
		Token: dto.TokenResponse{
			AccessToken:      pair.AccessToken,
			RefreshToken:     pair.RefreshToken,
			TokenType:        "Bearer",
			ExpiresIn:        int64(pair.ExpiresIn),
			RefreshExpiresIn: int64(pair.RefreshExpiresIn),
		},
	}, nil
}

// tokenError maps JWT failures onto the application's token sentinels
func tokenError(err error) error {
	if errors.Is(err, auth.ErrExpiredToken) {
		return apperrors.ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
}
