package auth

import (
	"context"
	"fmt"

	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/logger"
)

// AuthorizationService answers record-level access questions for a session
type AuthorizationService struct {
	assignments repositories.Collection[models.Assignment]
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(gw *repositories.Gateway) *AuthorizationService {
	return &AuthorizationService{assignments: gw.Assignments}
}

// ActiveAssignments returns the practitioner's active assignments
func (s *AuthorizationService) ActiveAssignments(ctx context.Context, practitionerID string) ([]models.Assignment, error) {
	rows, err := s.assignments.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{
			repositories.Eq("practitioner_id", practitionerID),
			repositories.Eq("active", true),
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("practitionerID", practitionerID).Msg("Error loading active assignments")
		return nil, fmt.Errorf("error loading assignments: %w", err)
	}
	return rows, nil
}

// CanAccessInjury allows the reporting student, any practitioner actively assigned to the injury, and admins
func (s *AuthorizationService) CanAccessInjury(ctx context.Context, session Session, injury models.Injury) error {
	return MatchRole(session.Role,
		func(StudentRole) error {
			if injury.StudentID != session.UserID {
				return apperrors.NewForbiddenError("you can only access your own injuries")
			}
			return nil
		},
		func(PractitionerRole) error {
			active, err := s.ActiveAssignments(ctx, session.UserID)
			if err != nil {
				return err
			}
			for _, a := range active {
				if a.InjuryID == injury.ID {
					return nil
				}
			}
			return apperrors.NewForbiddenError("you are not assigned to this injury")
		},
		func(AdminRole) error { return nil },
	)
}

// CanAccessStudent allows the student themself, practitioners with an active assignment for them, and admins
func (s *AuthorizationService) CanAccessStudent(ctx context.Context, session Session, studentID string) error {
	return MatchRole(session.Role,
		func(StudentRole) error {
			if studentID != session.UserID {
				return apperrors.NewForbiddenError("you can only access your own records")
			}
			return nil
		},
		func(PractitionerRole) error {
			active, err := s.ActiveAssignments(ctx, session.UserID)
			if err != nil {
				return err
			}
			for _, a := range active {
				if a.StudentID == studentID {
					return nil
				}
			}
			return apperrors.NewForbiddenError("this student is not in your caseload")
		},
		func(AdminRole) error { return nil },
	)
}
