package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// DefaultAppointmentMinutes is used when a request leaves the duration out
const DefaultAppointmentMinutes = 30

// AppointmentService schedules sessions between students and practitioners
type AppointmentService struct {
	gw     *repositories.Gateway
	authz  *appauth.AuthorizationService
	now    Clock
	logger zerolog.Logger
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(gw *repositories.Gateway, authz *appauth.AuthorizationService, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		gw:     gw,
		authz:  authz,
		now:    utcNow,
		logger: logger,
	}
}

// List returns the appointments the session takes part in (all for admins), latest first
func (s *AppointmentService) List(ctx context.Context, session appauth.Session) ([]models.Appointment, error) {
	rows, err := scopedList(ctx, session, s.gw.Appointments, "scheduled_at")
	if err != nil {
		s.logger.Error().Err(err).Str("userID", session.UserID).Msg("Error listing appointments")
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	return rows, nil
}

// Create schedules an appointment. Practitioners book for students in their
// caseload; admins name the practitioner.
func (s *AppointmentService) Create(ctx context.Context, session appauth.Session, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := requireRole(session, models.RolePractitioner, models.RoleAdmin); err != nil {
		return nil, err
	}

	practitionerID := req.PractitionerID
	if !session.IsAdmin() {
		practitionerID = session.UserID
	}
	if practitionerID == "" {
		return nil, apperrors.NewValidationError("practitionerId is required")
	}
	if err := s.authz.CanAccessStudent(ctx, session, req.StudentID); err != nil {
		return nil, err
	}

	student, err := s.gw.Users.Get(ctx, req.StudentID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "student not found")
	}
	if student.RoleType != models.RoleStudent {
		return nil, apperrors.NewValidationError("studentId does not belong to a student")
	}
	if session.IsAdmin() {
		practitioner, err := s.gw.Users.Get(ctx, practitionerID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrUserNotFound, "practitioner not found")
		}
		if practitioner.RoleType != models.RolePractitioner {
			return nil, apperrors.NewValidationError("practitionerId does not belong to a practitioner")
		}
	}
	if req.InjuryID != nil {
		injury, err := s.gw.Injuries.Get(ctx, *req.InjuryID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrInjuryNotFound, "injury not found")
		}
		if injury.StudentID != student.ID {
			return nil, apperrors.NewValidationError("injury does not belong to the student")
		}
	}

	scheduledAt := req.ScheduledAt.UTC()
	if scheduledAt.Before(s.now()) {
		return nil, apperrors.NewValidationError("scheduledAt must be in the future")
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = DefaultAppointmentMinutes
	}

	created, err := s.gw.Appointments.Create(ctx, models.Appointment{
		StudentID:       student.ID,
		PractitionerID:  practitionerID,
		InjuryID:        req.InjuryID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: duration,
		Location:        strings.TrimSpace(req.Location),
		Status:          models.AppointmentScheduled,
		Notes:           strings.TrimSpace(req.Notes),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("studentID", student.ID).Msg("Error creating appointment")
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	s.logger.Info().Str("appointmentID", created.ID).Time("scheduledAt", scheduledAt).Msg("Appointment scheduled")
	return &created, nil
}

// UpdateStatus completes or cancels an appointment. Students may only cancel their own.
func (s *AppointmentService) UpdateStatus(ctx context.Context, session appauth.Session, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	switch status {
	case models.AppointmentScheduled, models.AppointmentCompleted, models.AppointmentCancelled:
	default:
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusChange, fmt.Sprintf("unknown appointment status %q", status))
	}

	current, err := s.gw.Appointments.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAppointmentNotFound, "appointment not found")
	}

	err = appauth.MatchRole(session.Role,
		func(appauth.StudentRole) error {
			if current.StudentID != session.UserID {
				return apperrors.NewForbiddenError("you can only change your own appointments")
			}
			if status != models.AppointmentCancelled {
				return apperrors.NewForbiddenError("students can only cancel appointments")
			}
			return nil
		},
		func(appauth.PractitionerRole) error {
			if current.PractitionerID != session.UserID {
				return apperrors.NewForbiddenError("you can only change your own appointments")
			}
			return nil
		},
		func(appauth.AdminRole) error { return nil },
	)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return &current, nil
	}

	updated, err := s.gw.Appointments.Update(ctx, id, repositories.Changes{"status": status})
	if err != nil {
		s.logger.Error().Err(err).Str("appointmentID", id).Msg("Error updating appointment status")
		return nil, fmt.Errorf("error updating appointment: %w", err)
	}
	return &updated, nil
}

// Upcoming returns scheduled appointments whose start lies in [from, to], soonest first
func (s *AppointmentService) Upcoming(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	rows, err := s.gw.Appointments.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{
			repositories.Eq("status", models.AppointmentScheduled),
			repositories.Gte("scheduled_at", from),
			repositories.Lte("scheduled_at", to),
		},
		OrderBy: "scheduled_at",
	})
	if err != nil {
		return nil, fmt.Errorf("error loading upcoming appointments: %w", err)
	}
	return rows, nil
}
