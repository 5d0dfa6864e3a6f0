package models

import "strings"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent      RoleType = "student"
	RolePractitioner RoleType = "practitioner"
	RoleAdmin        RoleType = "admin"
)

// Valid reports whether the role is one of the known roles
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RolePractitioner, RoleAdmin:
		return true
	}
	return false
}

// Severity is the ordered injury severity scale
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// Severities lists every severity in ascending order
var Severities = []Severity{SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical}

// Rank returns the position of the severity on the scale, or -1 when unknown
func (s Severity) Rank() int {
	for i, candidate := range Severities {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the severity is one of the four literals
func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// InjuryStatus tracks where an injury is in its lifecycle
type InjuryStatus string

const (
	InjuryStatusReported    InjuryStatus = "reported"
	InjuryStatusAssigned    InjuryStatus = "assigned"
	InjuryStatusInTreatment InjuryStatus = "in_treatment"
	InjuryStatusRecovering  InjuryStatus = "recovering"
	InjuryStatusResolved    InjuryStatus = "resolved"
)

// Valid reports whether the status is known
func (s InjuryStatus) Valid() bool {
	switch s {
	case InjuryStatusReported, InjuryStatusAssigned, InjuryStatusInTreatment, InjuryStatusRecovering, InjuryStatusResolved:
		return true
	}
	return false
}

// AppointmentStatus is the state of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// PlanStatus is the state of a treatment plan
type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
)

// ChecklistStatus is the state of a return-to-play checklist
type ChecklistStatus string

const (
	ChecklistPending    ChecklistStatus = "pending"
	ChecklistInProgress ChecklistStatus = "in_progress"
	ChecklistCleared    ChecklistStatus = "cleared"
)

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
