package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/assignment"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// DashboardService assembles the role-conditioned landing view
type DashboardService struct {
	gw          *repositories.Gateway
	authz       *appauth.AuthorizationService
	analytics   *AnalyticsService
	assignments *AssignmentService
	messages    *MessageService
	now         Clock
	logger      zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	gw *repositories.Gateway,
	authz *appauth.AuthorizationService,
	analytics *AnalyticsService,
	assignments *AssignmentService,
	messages *MessageService,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		gw:          gw,
		authz:       authz,
		analytics:   analytics,
		assignments: assignments,
		messages:    messages,
		now:         utcNow,
		logger:      logger,
	}
}

// Get builds the dashboard for the session's role
func (s *DashboardService) Get(ctx context.Context, session appauth.Session) (*dto.Dashboard, error) {
	dashboard := &dto.Dashboard{Role: session.Role.Type()}

	err := appauth.MatchRole(session.Role,
		func(appauth.StudentRole) error {
			d, err := s.student(ctx, session.UserID)
			dashboard.Student = d
			return err
		},
		func(appauth.PractitionerRole) error {
			d, err := s.practitioner(ctx, session.UserID)
			dashboard.Practitioner = d
			return err
		},
		func(appauth.AdminRole) error {
			d, err := s.admin(ctx, session)
			dashboard.Admin = d
			return err
		},
	)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", session.UserID).Msg("Error building dashboard")
		return nil, err
	}
	return dashboard, nil
}

// upcoming returns the user's scheduled appointments from now on, soonest first
func (s *DashboardService) upcoming(ctx context.Context, column, userID string) ([]models.Appointment, error) {
	rows, err := s.gw.Appointments.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{
			repositories.Eq(column, userID),
			repositories.Eq("status", models.AppointmentScheduled),
			repositories.Gte("scheduled_at", s.now().Add(-time.Minute)),
		},
		OrderBy: "scheduled_at",
	})
	if err != nil {
		return nil, fmt.Errorf("error loading appointments: %w", err)
	}
	return rows, nil
}

func (s *DashboardService) student(ctx context.Context, userID string) (*dto.StudentDashboard, error) {
	d := &dto.StudentDashboard{}
	var err error

	if d.Injuries, err = s.gw.Injuries.Filter(ctx, byStudent(userID, "date_reported")); err != nil {
		return nil, fmt.Errorf("error loading injuries: %w", err)
	}
	if d.UpcomingAppointments, err = s.upcoming(ctx, "student_id", userID); err != nil {
		return nil, err
	}

	if d.ActivePlans, err = s.gw.TreatmentPlans.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{
			repositories.Eq("student_id", userID),
			repositories.Eq("status", models.PlanActive),
		},
		OrderBy: "created_at",
		Desc:    true,
	}); err != nil {
		return nil, fmt.Errorf("error loading plans: %w", err)
	}

	checklists, err := s.gw.RTPChecklists.Filter(ctx, byStudent(userID, "created_at"))
	if err != nil {
		return nil, fmt.Errorf("error loading checklists: %w", err)
	}
	d.OpenChecklists = make([]models.RTPChecklist, 0, len(checklists))
	for _, c := range checklists {
		if c.Status != models.ChecklistCleared {
			d.OpenChecklists = append(d.OpenChecklists, c)
		}
	}
	return d, nil
}

func (s *DashboardService) practitioner(ctx context.Context, userID string) (*dto.PractitionerDashboard, error) {
	active, err := s.authz.ActiveAssignments(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &dto.PractitionerDashboard{Caseload: make([]dto.CaseloadEntry, 0, len(active))}
	for _, a := range active {
		entry := dto.CaseloadEntry{Assignment: a}
		if injury, err := s.gw.Injuries.Get(ctx, a.InjuryID); err == nil {
			entry.Injury = &injury
		} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, fmt.Errorf("error loading injury: %w", err)
		}
		if student, err := s.gw.Users.Get(ctx, a.StudentID); err == nil {
			summary := dto.NewUserSummary(student)
			entry.Student = &summary
		} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, fmt.Errorf("error loading student: %w", err)
		}
		d.Caseload = append(d.Caseload, entry)
	}

	if d.UpcomingAppointments, err = s.upcoming(ctx, "practitioner_id", userID); err != nil {
		return nil, err
	}
	if d.UnreadMessages, err = s.messages.UnreadCount(ctx, userID); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DashboardService) admin(ctx context.Context, session appauth.Session) (*dto.AdminDashboard, error) {
	ds, err := s.analytics.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool)
	for _, a := range ds.Assignments {
		if a.Active {
			assigned[a.InjuryID] = true
		}
	}

	d := &dto.AdminDashboard{
		TotalInjuries:  len(ds.Injuries),
		RecoveryRate:   reporting.RecoveryRate(ds.Injuries),
		RecurrenceRate: reporting.RecurrenceRate(ds.Injuries),
		Workload:       reporting.PractitionerWorkload(ds.Assignments, ds.Practitioners),
	}
	for _, injury := range ds.Injuries {
		if injury.Status == models.InjuryStatusResolved {
			continue
		}
		d.OpenInjuries++
		if !assigned[injury.ID] {
			d.UnassignedInjuries++
		}
	}

	suggestion, err := s.assignments.Suggest(ctx, session, assignment.DefaultCriteria)
	switch {
	case err == nil:
		d.Suggestion = suggestion
	case !IsNoSuggestion(err):
		return nil, err
	}
	return d, nil
}
