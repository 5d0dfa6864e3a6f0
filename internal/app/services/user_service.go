package services

import (
	"context"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
)

// UserService defines the interface for user directory operations
type UserService interface {
	ListPractitioners(ctx context.Context) ([]dto.UserSummary, error)
	ListStudents(ctx context.Context, session appauth.Session) ([]dto.UserSummary, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	gw     *repositories.Gateway
	authz  *appauth.AuthorizationService
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(gw *repositories.Gateway, authz *appauth.AuthorizationService, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		gw:     gw,
		authz:  authz,
		logger: logger,
	}
}

// ListPractitioners returns every practitioner ordered by name
func (s *userServiceImpl) ListPractitioners(ctx context.Context) ([]dto.UserSummary, error) {
	users, err := usersByRole(ctx, s.gw, models.RolePractitioner)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing practitioners")
		return nil, err
	}
	return dto.NewUserSummaries(users), nil
}

// ListStudents returns every student for admins and the active caseload's
// students for practitioners
func (s *userServiceImpl) ListStudents(ctx context.Context, session appauth.Session) ([]dto.UserSummary, error) {
	if err := requireRole(session, models.RolePractitioner, models.RoleAdmin); err != nil {
		return nil, err
	}

	students, err := usersByRole(ctx, s.gw, models.RoleStudent)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing students")
		return nil, err
	}
	if session.IsAdmin() {
		return dto.NewUserSummaries(students), nil
	}

	active, err := s.authz.ActiveAssignments(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	caseload := make(map[string]bool, len(active))
	for _, a := range active {
		caseload[a.StudentID] = true
	}

	scoped := make([]models.User, 0, len(caseload))
	for _, student := range students {
		if caseload[student.ID] {
			scoped = append(scoped, student)
		}
	}
	return dto.NewUserSummaries(scoped), nil
}
