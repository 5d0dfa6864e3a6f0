// Package services holds the business operations behind the HTTP API. Every
// operation takes the caller's session explicitly and reaches storage only
// through the repositories gateway.
package services

import (
	"context"
	"fmt"
	"time"

	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// Realtime event types pushed to connected users
const (
	EventMessageCreated      = "message.created"
	EventAppointmentUpcoming = "appointment.upcoming"
	EventAssignmentCreated   = "assignment.created"
	EventInjuryUpdated       = "injury.updated"
)

// EventPublisher pushes events to the given users; *websocket.Hub implements it
type EventPublisher interface {
	Publish(userIDs []string, eventType string, data any)
}

type noopPublisher struct{}

func (noopPublisher) Publish([]string, string, any) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// Clock returns the current time; tests replace it
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// requireRole fails with a forbidden error unless the session holds one of roles
func requireRole(session appauth.Session, roles ...models.RoleType) error {
	if session.Is(roles...) {
		return nil
	}
	return apperrors.NewForbiddenError("your role cannot perform this operation")
}

// notFound rewraps a gateway miss with a domain sentinel and a client message
func notFound(err error, sentinel error, message string) error {
	if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrUserNotFound) {
		return &apperrors.CustomError{Err: fmt.Errorf("%w: %w", sentinel, apperrors.ErrResourceNotFound), Message: message}
	}
	return err
}

// usersByRole loads every user holding role
func usersByRole(ctx context.Context, gw *repositories.Gateway, role models.RoleType) ([]models.User, error) {
	users, err := gw.Users.Filter(ctx, repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("role", role)},
		OrderBy: "full_name",
	})
	if err != nil {
		return nil, fmt.Errorf("error loading %s users: %w", role, err)
	}
	return users, nil
}

// activeAssignments loads every active assignment
func activeAssignments(ctx context.Context, gw *repositories.Gateway) ([]models.Assignment, error) {
	rows, err := gw.Assignments.Filter(ctx, repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("active", true)},
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("error loading active assignments: %w", err)
	}
	return rows, nil
}

// byStudent scopes a listing to one student, newest first
func byStudent(studentID, orderBy string) repositories.Query {
	return repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("student_id", studentID)},
		OrderBy: orderBy,
		Desc:    true,
	}
}

// byPractitioner scopes a listing to one practitioner, newest first
func byPractitioner(practitionerID, orderBy string) repositories.Query {
	return repositories.Query{
		Where:   []repositories.Cond{repositories.Eq("practitioner_id", practitionerID)},
		OrderBy: orderBy,
		Desc:    true,
	}
}

// injuryIDs collects the injury ids of assignments
func injuryIDs(assignments []models.Assignment) map[string]bool {
	ids := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		ids[a.InjuryID] = true
	}
	return ids
}

// scopedList returns all rows for admins, the student's rows for students and the
// rows of the practitioner's own records for practitioners
func scopedList[T any](ctx context.Context, session appauth.Session, c repositories.Collection[T], orderBy string) ([]T, error) {
	return appauth.MatchRoleE(session.Role,
		func(appauth.StudentRole) ([]T, error) {
			return c.Filter(ctx, byStudent(session.UserID, orderBy))
		},
		func(appauth.PractitionerRole) ([]T, error) {
			return c.Filter(ctx, byPractitioner(session.UserID, orderBy))
		},
		func(appauth.AdminRole) ([]T, error) {
			return c.Filter(ctx, repositories.Query{OrderBy: orderBy, Desc: true})
		},
	)
}
