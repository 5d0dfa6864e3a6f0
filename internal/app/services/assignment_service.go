package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/assignment"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// AssignmentService links practitioners to injuries
type AssignmentService struct {
	gw        *repositories.Gateway
	publisher EventPublisher
	logger    zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(gw *repositories.Gateway, publisher EventPublisher, logger zerolog.Logger) *AssignmentService {
	return &AssignmentService{
		gw:        gw,
		publisher: publisherOrNoop(publisher),
		logger:    logger,
	}
}

// List returns the assignments visible to the session, newest first
func (s *AssignmentService) List(ctx context.Context, session appauth.Session) ([]models.Assignment, error) {
	rows, err := scopedList(ctx, session, s.gw.Assignments, "created_at")
	if err != nil {
		s.logger.Error().Err(err).Str("userID", session.UserID).Msg("Error listing assignments")
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	return rows, nil
}

// Create assigns a practitioner to an injury and moves a reported injury to assigned
func (s *AssignmentService) Create(ctx context.Context, session appauth.Session, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if err := requireRole(session, models.RoleAdmin); err != nil {
		return nil, err
	}

	injury, err := s.gw.Injuries.Get(ctx, req.InjuryID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
	}
	practitioner, err := s.gw.Users.Get(ctx, req.PractitionerID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "practitioner not found")
	}
	if practitioner.RoleType != models.RolePractitioner {
		return nil, apperrors.NewValidationError("practitionerId does not belong to a practitioner")
	}

	created, err := s.gw.Assignments.Create(ctx, models.Assignment{
		StudentID:      injury.StudentID,
		PractitionerID: practitioner.ID,
		InjuryID:       injury.ID,
		Active:         true,
		Notes:          strings.TrimSpace(req.Notes),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("injuryID", injury.ID).Msg("Error creating assignment")
		return nil, fmt.Errorf("error creating assignment: %w", err)
	}

	if injury.Status == models.InjuryStatusReported {
		if _, err := s.gw.Injuries.Update(ctx, injury.ID, repositories.Changes{"status": models.InjuryStatusAssigned}); err != nil {
			s.logger.Error().Err(err).Str("injuryID", injury.ID).Msg("Error moving injury to assigned")
			return nil, fmt.Errorf("error updating injury status: %w", err)
		}
	}

	s.logger.Info().
		Str("assignmentID", created.ID).
		Str("injuryID", injury.ID).
		Str("practitionerID", practitioner.ID).
		Msg("Practitioner assigned")
	s.publisher.Publish([]string{created.PractitionerID, created.StudentID}, EventAssignmentCreated, created)
	return &created, nil
}

// Deactivate closes an assignment; deactivating an inactive assignment is a no-op
func (s *AssignmentService) Deactivate(ctx context.Context, session appauth.Session, id string) (*models.Assignment, error) {
	if err := requireRole(session, models.RoleAdmin); err != nil {
		return nil, err
	}

	current, err := s.gw.Assignments.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAssignmentNotFound, "assignment not found")
	}
	if !current.Active {
		return &current, nil
	}

	updated, err := s.gw.Assignments.Update(ctx, id, repositories.Changes{"active": false})
	if err != nil {
		s.logger.Error().Err(err).Str("assignmentID", id).Msg("Error deactivating assignment")
		return nil, fmt.Errorf("error deactivating assignment: %w", err)
	}
	return &updated, nil
}

// Suggest runs the assignment heuristic over open injuries, oldest report first.
// It returns apperrors.ErrNoSuggestion when there is nothing to pair.
func (s *AssignmentService) Suggest(ctx context.Context, session appauth.Session, criteria assignment.Criteria) (*assignment.Suggestion, error) {
	if err := requireRole(session, models.RoleAdmin); err != nil {
		return nil, err
	}

	all, err := s.gw.Injuries.Filter(ctx, repositories.Query{OrderBy: "date_reported"})
	if err != nil {
		return nil, fmt.Errorf("error loading injuries: %w", err)
	}
	open := make([]models.Injury, 0, len(all))
	for _, injury := range all {
		if injury.Status != models.InjuryStatusResolved {
			open = append(open, injury)
		}
	}

	practitioners, err := usersByRole(ctx, s.gw, models.RolePractitioner)
	if err != nil {
		return nil, err
	}
	active, err := activeAssignments(ctx, s.gw)
	if err != nil {
		return nil, err
	}

	suggestion, ok := assignment.Suggest(open, practitioners, active, criteria)
	if !ok {
		return nil, apperrors.ErrNoSuggestion
	}
	return &suggestion, nil
}

// IsNoSuggestion reports whether err means the heuristic had nothing to pair
func IsNoSuggestion(err error) bool {
	return errors.Is(err, apperrors.ErrNoSuggestion)
}
