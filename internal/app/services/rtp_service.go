package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/helpers"
)

// RTPService manages return-to-play checklists
type RTPService struct {
	gw        *repositories.Gateway
	authz     *appauth.AuthorizationService
	publisher EventPublisher
	now       Clock
	logger    zerolog.Logger
}

// NewRTPService creates a new RTPService
func NewRTPService(gw *repositories.Gateway, authz *appauth.AuthorizationService, publisher EventPublisher, logger zerolog.Logger) *RTPService {
	return &RTPService{
		gw:        gw,
		authz:     authz,
		publisher: publisherOrNoop(publisher),
		now:       utcNow,
		logger:    logger,
	}
}

// List returns the checklists visible to the session, newest first
func (s *RTPService) List(ctx context.Context, session appauth.Session) ([]models.RTPChecklist, error) {
	rows, err := scopedList(ctx, session, s.gw.RTPChecklists, "created_at")
	if err != nil {
		return nil, fmt.Errorf("error listing checklists: %w", err)
	}
	return rows, nil
}

// Create opens a checklist for an injury the practitioner is assigned to
func (s *RTPService) Create(ctx context.Context, session appauth.Session, req *dto.CreateChecklistRequest) (*models.RTPChecklist, error) {
	if err := requireRole(session, models.RolePractitioner); err != nil {
		return nil, err
	}

	injury, err := s.gw.Injuries.Get(ctx, req.InjuryID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
	}
	if err := s.authz.CanAccessInjury(ctx, session, injury); err != nil {
		return nil, err
	}
	if injury.Status == models.InjuryStatusResolved {
		return nil, apperrors.NewConflictError("injury is already resolved")
	}

	items := cleanSteps(req.Items)
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("a checklist needs at least one item")
	}

	created, err := s.gw.RTPChecklists.Create(ctx, models.RTPChecklist{
		InjuryID:       injury.ID,
		StudentID:      injury.StudentID,
		PractitionerID: session.UserID,
		Items:          items,
		Status:         models.ChecklistPending,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("injuryID", injury.ID).Msg("Error creating checklist")
		return nil, fmt.Errorf("error creating checklist: %w", err)
	}
	return &created, nil
}

// Clear signs a student off to play. The injury is resolved and gets a return
// date when it has none.
func (s *RTPService) Clear(ctx context.Context, session appauth.Session, id string) (*dto.ChecklistClearance, error) {
	if err := requireRole(session, models.RolePractitioner, models.RoleAdmin); err != nil {
		return nil, err
	}

	checklist, err := s.gw.RTPChecklists.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrChecklistNotFound, "checklist not found")
	}
	if checklist.PractitionerID != session.UserID && !session.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only the checklist's practitioner can clear it")
	}
	if checklist.Status == models.ChecklistCleared {
		return nil, apperrors.NewConflictError("checklist is already cleared")
	}

	injury, err := s.gw.Injuries.Get(ctx, checklist.InjuryID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
	}

	now := s.now()
	checklist, err = s.gw.RTPChecklists.Update(ctx, checklist.ID, repositories.Changes{
		"status":     models.ChecklistCleared,
		"cleared_at": now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("checklistID", id).Msg("Error clearing checklist")
		return nil, fmt.Errorf("error clearing checklist: %w", err)
	}

	changes := repositories.Changes{"status": models.InjuryStatusResolved}
	if injury.DateReturned == nil {
		changes["date_returned"] = now
	}
	injury, err = s.gw.Injuries.Update(ctx, injury.ID, changes)
	if err != nil {
		return nil, fmt.Errorf("error resolving injury: %w", err)
	}

	s.logger.Info().Str("checklistID", checklist.ID).Str("injuryID", injury.ID).Msg("Student cleared to play")
	s.publisher.Publish([]string{injury.StudentID}, EventInjuryUpdated, injury)
	return &dto.ChecklistClearance{
		Checklist:   checklist,
		Injury:      injury,
		DaysToClear: helpers.DaysBetween(injury.DateReported, now),
	}, nil
}
