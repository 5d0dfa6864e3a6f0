package auth

import (
	"fmt"

	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// Role is the closed set of user roles. Only the three types below implement it.
type Role interface {
	Type() models.RoleType
	sealed()
}

// StudentRole is a student-athlete
type StudentRole struct {
	Sport string
}

// PractitionerRole is a clinician who treats injuries
type PractitionerRole struct {
	Specialization string
}

// AdminRole manages assignments and reads analytics
type AdminRole struct{}

func (StudentRole) Type() models.RoleType      { return models.RoleStudent }
func (PractitionerRole) Type() models.RoleType { return models.RolePractitioner }
func (AdminRole) Type() models.RoleType        { return models.RoleAdmin }

func (StudentRole) sealed()      {}
func (PractitionerRole) sealed() {}
func (AdminRole) sealed()        {}

// RoleFromUser builds the role carried by a stored user
func RoleFromUser(u *models.User) (Role, error) {
	switch u.RoleType {
	case models.RoleStudent:
		return StudentRole{Sport: u.SportName()}, nil
	case models.RolePractitioner:
		return PractitionerRole{Specialization: u.SpecializationName()}, nil
	case models.RoleAdmin:
		return AdminRole{}, nil
	}
	return nil, fmt.Errorf("user %s has role %q: %w", u.ID, u.RoleType, apperrors.ErrPermissionDenied)
}

// MatchRole calls the branch matching r. Every role needs a branch, so adding a
// role breaks every call site at compile time.
func MatchRole[T any](r Role, student func(StudentRole) T, practitioner func(PractitionerRole) T, admin func(AdminRole) T) T {
	switch role := r.(type) {
	case StudentRole:
		return student(role)
	case PractitionerRole:
		return practitioner(role)
	case AdminRole:
		return admin(role)
	}
	panic(fmt.Sprintf("auth: unknown role %T", r))
}

// MatchRoleE is MatchRole for branches that can fail
func MatchRoleE[T any](r Role, student func(StudentRole) (T, error), practitioner func(PractitionerRole) (T, error), admin func(AdminRole) (T, error)) (T, error) {
	switch role := r.(type) {
	case StudentRole:
		return student(role)
	case PractitionerRole:
		return practitioner(role)
	case AdminRole:
		return admin(role)
	}
	var zero T
	return zero, fmt.Errorf("unknown role %T: %w", r, apperrors.ErrPermissionDenied)
}

// Session is the authenticated caller, resolved once per request
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// Is reports whether the session holds one of roles
func (s Session) Is(roles ...models.RoleType) bool {
	if s.Role == nil {
		return false
	}
	for _, r := range roles {
		if s.Role.Type() == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session is an admin
func (s Session) IsAdmin() bool {
	return s.Is(models.RoleAdmin)
}
