package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// Demo credentials shared by every seeded account
const (
	DemoPassword = "Password123!"
	AdminEmail   = "admin@injurydesk.edu"
)

// Fixed ids so demo links and tests stay stable
const (
	AdminID        = "00000000-0000-4000-8000-000000000001"
	PhysioID       = "00000000-0000-4000-8000-000000000011"
	SportsMedID    = "00000000-0000-4000-8000-000000000012"
	StrengthID     = "00000000-0000-4000-8000-000000000013"
	StudentAlexID  = "00000000-0000-4000-8000-000000000021"
	StudentBlairID = "00000000-0000-4000-8000-000000000022"
	StudentCaseyID = "00000000-0000-4000-8000-000000000023"
	StudentDrewID  = "00000000-0000-4000-8000-000000000024"
)

func ptr[T any](v T) *T { return &v }

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

// DemoData returns the dataset served by the fixture backend. Appointments are
// placed relative to now so the reminder poll has something to announce.
// Passwords are hashed with the minimum bcrypt cost to keep start-up fast.
func DemoData(now time.Time) (repositories.FixtureData, error) {
	hash, err := auth.HashPasswordWithCost(DemoPassword, bcrypt.MinCost)
	if err != nil {
		return repositories.FixtureData{}, fmt.Errorf("failed to hash demo password: %w", err)
	}

	created := date(2024, time.January, 2)
	user := func(id, email, name string, role models.RoleType) models.User {
		return models.User{ID: id, Email: email, Password: hash, FullName: name, RoleType: role, CreatedAt: created, UpdatedAt: created}
	}
	student := func(id, email, name, sport string) models.User {
		u := user(id, email, name, models.RoleStudent)
		u.Sport = ptr(sport)
		return u
	}
	practitioner := func(id, email, name, specialization string) models.User {
		u := user(id, email, name, models.RolePractitioner)
		u.Specialization = ptr(specialization)
		return u
	}

	injury := func(id, studentID, kind string, severity models.Severity, part string, reported time.Time, status models.InjuryStatus) models.Injury {
		return models.Injury{
			ID: id, StudentID: studentID, InjuryType: kind, Severity: severity, BodyPart: part,
			DateOccurred: ptr(reported.AddDate(0, 0, -1)), DateReported: reported, Status: status,
			CreatedAt: reported, UpdatedAt: reported,
		}
	}

	injuries := []models.Injury{
		injury("inj-001", StudentAlexID, "Hamstring strain", models.SeverityModerate, "Left thigh", date(2024, time.January, 15), models.InjuryStatusResolved),
		injury("inj-002", StudentBlairID, "Ankle sprain", models.SeverityMild, "Right ankle", date(2024, time.January, 28), models.InjuryStatusResolved),
		injury("inj-003", StudentCaseyID, "ACL tear", models.SeveritySevere, "Left knee", date(2024, time.February, 9), models.InjuryStatusRecovering),
		injury("inj-004", StudentAlexID, "Hamstring strain", models.SeverityMild, "Left thigh", date(2024, time.March, 3), models.InjuryStatusInTreatment),
		injury("inj-005", StudentDrewID, "Concussion", models.SeverityCritical, "Head", date(2024, time.March, 21), models.InjuryStatusAssigned),
		injury("inj-006", StudentBlairID, "Shoulder dislocation", models.SeveritySevere, "Right shoulder", date(2024, time.April, 2), models.InjuryStatusReported),
		injury("inj-007", StudentCaseyID, "Shin splints", models.SeverityMild, "Both shins", date(2024, time.April, 18), models.InjuryStatusReported),
	}
	injuries[0].DateReturned = ptr(date(2024, time.February, 5))
	injuries[1].DaysLost = ptr(6)
	injuries[1].DateReturned = ptr(date(2024, time.February, 3))

	assignments := []models.Assignment{
		{ID: "asg-001", StudentID: StudentAlexID, PractitionerID: PhysioID, InjuryID: "inj-001", Active: false, Notes: "Closed after return to play", CreatedAt: date(2024, time.January, 16)},
		{ID: "asg-002", StudentID: StudentCaseyID, PractitionerID: SportsMedID, InjuryID: "inj-003", Active: true, CreatedAt: date(2024, time.February, 10)},
		{ID: "asg-003", StudentID: StudentAlexID, PractitionerID: PhysioID, InjuryID: "inj-004", Active: true, CreatedAt: date(2024, time.March, 4)},
		{ID: "asg-004", StudentID: StudentDrewID, PractitionerID: SportsMedID, InjuryID: "inj-005", Active: true, CreatedAt: date(2024, time.March, 22)},
	}

	soon := now.UTC().Truncate(time.Minute).Add(30 * time.Minute)
	appointments := []models.Appointment{
		{ID: "apt-001", StudentID: StudentAlexID, PractitionerID: PhysioID, InjuryID: ptr("inj-004"), ScheduledAt: soon, DurationMinutes: 45, Location: "Physio room 2", Status: models.AppointmentScheduled, CreatedAt: created},
		{ID: "apt-002", StudentID: StudentCaseyID, PractitionerID: SportsMedID, InjuryID: ptr("inj-003"), ScheduledAt: soon.Add(24 * time.Hour), DurationMinutes: 30, Location: "Clinic A", Status: models.AppointmentScheduled, CreatedAt: created},
		{ID: "apt-003", StudentID: StudentAlexID, PractitionerID: PhysioID, InjuryID: ptr("inj-001"), ScheduledAt: date(2024, time.January, 20), DurationMinutes: 30, Location: "Physio room 2", Status: models.AppointmentCompleted, CreatedAt: created},
	}

	messages := []models.Message{
		{ID: "msg-001", SenderID: StudentAlexID, ReceiverID: PhysioID, Content: "Hamstring feels tight after sprints.", CreatedAt: date(2024, time.March, 5)},
		{ID: "msg-002", SenderID: PhysioID, ReceiverID: StudentAlexID, Content: "Skip sprints this week, keep the mobility routine.", Read: true, CreatedAt: date(2024, time.March, 5).Add(time.Hour)},
	}

	recoveryLogs := []models.RecoveryLog{
		{ID: "log-001", InjuryID: "inj-003", StudentID: StudentCaseyID, PainLevel: 7, Mobility: 3, CreatedAt: date(2024, time.February, 20)},
		{ID: "log-002", InjuryID: "inj-003", StudentID: StudentCaseyID, PainLevel: 4, Mobility: 6, Notes: "Walking without crutches", CreatedAt: date(2024, time.March, 20)},
	}

	templates := []models.TreatmentTemplate{
		{
			ID: "tpl-001", Name: "Hamstring rehab", InjuryType: "Hamstring strain",
			Description: "Progressive loading for grade I-II strains",
			Steps:       []string{"Isometric holds", "Nordic curls", "Tempo runs", "Full sprint"},
			CreatedBy:   PhysioID, CreatedAt: created,
		},
	}

	plans := []models.TreatmentPlan{
		{
			ID: "plan-001", InjuryID: "inj-004", StudentID: StudentAlexID, PractitionerID: PhysioID,
			TemplateID: ptr("tpl-001"), Title: "Hamstring rehab (repeat)",
			Steps:  []string{"Isometric holds", "Nordic curls"},
			Status: models.PlanActive, CreatedAt: date(2024, time.March, 4), UpdatedAt: date(2024, time.March, 4),
		},
	}

	checklists := []models.RTPChecklist{
		{
			ID: "rtp-001", InjuryID: "inj-001", StudentID: StudentAlexID, PractitionerID: PhysioID,
			Items:  []string{"Pain free sprint", "Strength symmetry"},
			Status: models.ChecklistCleared, CreatedAt: date(2024, time.January, 25), ClearedAt: ptr(date(2024, time.February, 4)),
		},
		{
			ID: "rtp-002", InjuryID: "inj-003", StudentID: StudentCaseyID, PractitionerID: SportsMedID,
			Items:  []string{"Hop test", "Cutting drills"},
			Status: models.ChecklistInProgress, CreatedAt: date(2024, time.April, 1),
		},
	}

	return repositories.FixtureData{
		Users: []models.User{
			user(AdminID, AdminEmail, "Desk Admin", models.RoleAdmin),
			practitioner(PhysioID, "physio@injurydesk.edu", "Jordan Physio", "Physiotherapy"),
			practitioner(SportsMedID, "sportsmed@injurydesk.edu", "Riley Medic", "Sports medicine"),
			practitioner(StrengthID, "strength@injurydesk.edu", "Morgan Coach", "Strength and conditioning"),
			student(StudentAlexID, "alex@injurydesk.edu", "Alex Runner", "Athletics"),
			student(StudentBlairID, "blair@injurydesk.edu", "Blair Keeper", "Football"),
			student(StudentCaseyID, "casey@injurydesk.edu", "Casey Guard", "Basketball"),
			student(StudentDrewID, "drew@injurydesk.edu", "Drew Wing", "Rugby"),
		},
		Injuries:           injuries,
		Assignments:        assignments,
		Appointments:       appointments,
		Messages:           messages,
		RecoveryLogs:       recoveryLogs,
		TreatmentTemplates: templates,
		TreatmentPlans:     plans,
		RTPChecklists:      checklists,
	}, nil
}

// CreateDefaultData makes sure a live database has an admin account to log in with.
// It is idempotent.
func CreateDefaultData(ctx context.Context, gw *repositories.Gateway, adminPassword string, lgr zerolog.Logger) error {
	existing, err := gw.Users.Filter(ctx, repositories.Query{
		Where: []repositories.Cond{repositories.Eq("email", AdminEmail)},
		Limit: 1,
	})
	if err != nil {
		return fmt.Errorf("error checking if admin user exists: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Str("email", AdminEmail).Msg("Default admin user already exists")
		return nil
	}

	if adminPassword == "" {
		adminPassword = DemoPassword
	}
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	_, err = gw.Users.Create(ctx, models.User{
		Email:    AdminEmail,
		Password: hash,
		FullName: "Desk Admin",
		RoleType: models.RoleAdmin,
	})
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		// created concurrently by another instance
		return nil
	}
	if err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	lgr.Info().Str("email", AdminEmail).Msg("Default admin user created")
	return nil
}
