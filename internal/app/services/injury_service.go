package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/filestorage"
	"github.com/yigit/injurydesk/internal/pkg/validation"
)

// MaxAttachmentSize caps a single injury attachment
const MaxAttachmentSize = 10 << 20

// InjuryService handles injury reports, their progress and recovery logs
type InjuryService struct {
	gw        *repositories.Gateway
	authz     *appauth.AuthorizationService
	storage   filestorage.Uploader
	publisher EventPublisher
	now       Clock
	logger    zerolog.Logger
}

// NewInjuryService creates a new InjuryService. storage may be nil, in which
// case attachments are rejected.
func NewInjuryService(
	gw *repositories.Gateway,
	authz *appauth.AuthorizationService,
	storage filestorage.Uploader,
	publisher EventPublisher,
	logger zerolog.Logger,
) *InjuryService {
	return &InjuryService{
		gw:        gw,
		authz:     authz,
		storage:   storage,
		publisher: publisherOrNoop(publisher),
		now:       utcNow,
		logger:    logger,
	}
}

// List returns the injuries visible to the session, newest report first, narrowed by filter
func (s *InjuryService) List(ctx context.Context, session appauth.Session, filter reporting.Filter) ([]models.Injury, error) {
	injuries, err := appauth.MatchRoleE(session.Role,
		func(appauth.StudentRole) ([]models.Injury, error) {
			return s.gw.Injuries.Filter(ctx, byStudent(session.UserID, "date_reported"))
		},
		func(appauth.PractitionerRole) ([]models.Injury, error) {
			return s.caseload(ctx, session.UserID)
		},
		func(appauth.AdminRole) ([]models.Injury, error) {
			return s.gw.Injuries.Filter(ctx, repositories.Query{OrderBy: "date_reported", Desc: true})
		},
	)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", session.UserID).Msg("Error listing injuries")
		return nil, fmt.Errorf("error listing injuries: %w", err)
	}

	if filter.IsEmpty() {
		return injuries, nil
	}
	students, err := usersByRole(ctx, s.gw, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	return reporting.FilterInjuries(injuries, students, filter), nil
}

// caseload returns the injuries of the practitioner's active assignments
func (s *InjuryService) caseload(ctx context.Context, practitionerID string) ([]models.Injury, error) {
	active, err := s.authz.ActiveAssignments(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return []models.Injury{}, nil
	}

	all, err := s.gw.Injuries.Filter(ctx, repositories.Query{OrderBy: "date_reported", Desc: true})
	if err != nil {
		return nil, err
	}
	assigned := injuryIDs(active)
	out := make([]models.Injury, 0, len(assigned))
	for _, injury := range all {
		if assigned[injury.ID] {
			out = append(out, injury)
		}
	}
	return out, nil
}

// Create records a student's own injury report
func (s *InjuryService) Create(ctx context.Context, session appauth.Session, req *dto.CreateInjuryRequest) (*models.Injury, error) {
	if err := requireRole(session, models.RoleStudent); err != nil {
		return nil, err
	}
	if !req.Severity.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown severity %q", req.Severity))
	}

	now := s.now()
	injury := models.Injury{
		StudentID:    session.UserID,
		InjuryType:   strings.TrimSpace(req.InjuryType),
		Severity:     req.Severity,
		BodyPart:     strings.TrimSpace(req.BodyPart),
		Description:  strings.TrimSpace(req.Description),
		DateReported: now,
		Status:       models.InjuryStatusReported,
	}
	if req.DateOccurred != nil {
		occurred := req.DateOccurred.UTC()
		if occurred.After(now) {
			return nil, apperrors.NewValidationError("dateOccurred cannot be in the future")
		}
		injury.DateOccurred = &occurred
	}

	created, err := s.gw.Injuries.Create(ctx, injury)
	if err != nil {
		s.logger.Error().Err(err).Str("studentID", session.UserID).Msg("Error creating injury")
		return nil, fmt.Errorf("error creating injury: %w", err)
	}

	s.logger.Info().Str("injuryID", created.ID).Str("severity", string(created.Severity)).Msg("Injury reported")
	return &created, nil
}

// load fetches an injury and checks the session may see it
func (s *InjuryService) load(ctx context.Context, session appauth.Session, id string) (models.Injury, error) {
	injury, err := s.gw.Injuries.Get(ctx, id)
	if err != nil {
		return models.Injury{}, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
	}
	if err := s.authz.CanAccessInjury(ctx, session, injury); err != nil {
		return models.Injury{}, err
	}
	return injury, nil
}

// Get returns an injury with its student, practitioners, assignments and attachments
func (s *InjuryService) Get(ctx context.Context, session appauth.Session, id string) (*dto.InjuryDetail, error) {
	injury, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.InjuryDetail{
		Injury:        injury,
		Practitioners: []dto.UserSummary{},
		DaysLost:      reporting.DaysLost(injury),
	}

	if student, err := s.gw.Users.Get(ctx, injury.StudentID); err == nil {
		summary := dto.NewUserSummary(student)
		detail.Student = &summary
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error loading student: %w", err)
	}

	detail.Assignments, err = s.gw.Assignments.Filter(ctx, repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("injury_id", injury.ID)},
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("error loading assignments: %w", err)
	}
	seen := make(map[string]bool)
	for _, a := range detail.Assignments {
		if !a.Active || seen[a.PractitionerID] {
			continue
		}
		seen[a.PractitionerID] = true
		practitioner, err := s.gw.Users.Get(ctx, a.PractitionerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				continue
			}
			return nil, fmt.Errorf("error loading practitioner: %w", err)
		}
		detail.Practitioners = append(detail.Practitioners, dto.NewUserSummary(practitioner))
	}

	detail.Attachments, err = s.gw.Files.Filter(ctx, repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("injury_id", injury.ID)},
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("error loading attachments: %w", err)
	}

	return detail, nil
}

// Update records clinical progress. Resolving an injury without a return
// date stamps today as the return date.
func (s *InjuryService) Update(ctx context.Context, session appauth.Session, id string, req *dto.UpdateInjuryRequest) (*models.Injury, error) {
	if err := requireRole(session, models.RolePractitioner, models.RoleAdmin); err != nil {
		return nil, err
	}
	injury, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}

	changes := repositories.Changes{}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusChange, fmt.Sprintf("unknown injury status %q", *req.Status))
		}
		changes["status"] = *req.Status
	}
	switch {
	case req.ClearDaysLost:
		changes["days_lost"] = nil
	case req.DaysLost != nil:
		if *req.DaysLost < 0 {
			return nil, apperrors.NewValidationError("daysLost cannot be negative")
		}
		changes["days_lost"] = *req.DaysLost
	}
	switch {
	case req.ClearDateReturned:
		changes["date_returned"] = nil
	case req.DateReturned != nil:
		returned := req.DateReturned.UTC()
		if returned.Before(injury.DateReported) {
			return nil, apperrors.NewValidationError("dateReturned cannot be before the report date")
		}
		changes["date_returned"] = returned
	case req.Status != nil && *req.Status == models.InjuryStatusResolved && injury.DateReturned == nil:
		changes["date_returned"] = s.now()
	}

	updated, err := s.gw.Injuries.Update(ctx, injury.ID, changes)
	if err != nil {
		s.logger.Error().Err(err).Str("injuryID", injury.ID).Msg("Error updating injury")
		return nil, fmt.Errorf("error updating injury: %w", err)
	}

	if updated.Status != injury.Status {
		s.logger.Info().Str("injuryID", injury.ID).Str("from", string(injury.Status)).Str("to", string(updated.Status)).Msg("Injury status changed")
		s.publisher.Publish([]string{updated.StudentID}, EventInjuryUpdated, updated)
	}
	return &updated, nil
}

// AddAttachment stores an uploaded file against an injury
func (s *InjuryService) AddAttachment(ctx context.Context, session appauth.Session, id string, fileHeader *multipart.FileHeader) (*models.File, error) {
	if s.storage == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("file is required")
	}
	if fileHeader.Size > MaxAttachmentSize {
		return nil, apperrors.NewValidationError(fmt.Sprintf("file exceeds the %d MB limit", MaxAttachmentSize>>20))
	}

	injury, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}

	obj, err := s.storage.SaveUpload(ctx, fileHeader, "injuries/"+injury.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("injuryID", injury.ID).Msg("Error saving attachment")
		return nil, fmt.Errorf("error saving attachment: %w", err)
	}

	file, err := s.gw.Files.Create(ctx, models.File{
		OwnerID:  session.UserID,
		InjuryID: &injury.ID,
		Key:      obj.Key,
		URL:      obj.URL,
		FileName: obj.Filename,
		Size:     obj.Size,
		MimeType: obj.MimeType,
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, obj.Key); delErr != nil {
			s.logger.Warn().Err(delErr).Str("key", obj.Key).Msg("Failed to remove orphaned attachment")
		}
		return nil, fmt.Errorf("error recording attachment: %w", err)
	}

	s.logger.Info().Str("injuryID", injury.ID).Str("fileID", file.ID).Msg("Attachment added")
	return &file, nil
}

// ListRecoveryLogs returns the recovery logs of an injury, newest first
func (s *InjuryService) ListRecoveryLogs(ctx context.Context, session appauth.Session, injuryID string) ([]models.RecoveryLog, error) {
	injury, err := s.load(ctx, session, injuryID)
	if err != nil {
		return nil, err
	}

	logs, err := s.gw.RecoveryLogs.Filter(ctx, repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("injury_id", injury.ID)},
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading recovery logs: %w", err)
	}
	return logs, nil
}

// AddRecoveryLog records the owning student's self-report
func (s *InjuryService) AddRecoveryLog(ctx context.Context, session appauth.Session, injuryID string, req *dto.CreateRecoveryLogRequest) (*models.RecoveryLog, error) {
	if err := requireRole(session, models.RoleStudent); err != nil {
		return nil, err
	}
	injury, err := s.load(ctx, session, injuryID)
	if err != nil {
		return nil, err
	}
	if req.PainLevel == nil || req.Mobility == nil {
		return nil, apperrors.NewValidationError("painLevel and mobility are required")
	}
	if outOfScale(*req.PainLevel) || outOfScale(*req.Mobility) {
		return nil, apperrors.NewValidationError("painLevel and mobility must be between 0 and 10")
	}

	entry, err := s.gw.RecoveryLogs.Create(ctx, models.RecoveryLog{
		InjuryID:  injury.ID,
		StudentID: session.UserID,
		PainLevel: *req.PainLevel,
		Mobility:  *req.Mobility,
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating recovery log: %w", err)
	}
	return &entry, nil
}

func outOfScale(v int) bool {
	return v < validation.ScaleMin || v > validation.ScaleMax
}
