package dto

import (
	"github.com/yigit/injurydesk/internal/app/assignment"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/reporting"
)

// Dashboard is the role-conditioned landing view; exactly one section is set
type Dashboard struct {
	Role         models.RoleType        `json:"role"`
	Student      *StudentDashboard      `json:"student,omitempty"`
	Practitioner *PractitionerDashboard `json:"practitioner,omitempty"`
	Admin        *AdminDashboard        `json:"admin,omitempty"`
}

// StudentDashboard summarises a student's own care
type StudentDashboard struct {
	Injuries             []models.Injury        `json:"injuries"`
	UpcomingAppointments []models.Appointment   `json:"upcomingAppointments"`
	ActivePlans          []models.TreatmentPlan `json:"activePlans"`
	OpenChecklists       []models.RTPChecklist  `json:"openChecklists"`
}

// CaseloadEntry is one active assignment with its injury
type CaseloadEntry struct {
	Assignment models.Assignment `json:"assignment"`
	Injury     *models.Injury    `json:"injury,omitempty"`
	Student    *UserSummary      `json:"student,omitempty"`
}

// PractitionerDashboard summarises a practitioner's caseload
type PractitionerDashboard struct {
	Caseload             []CaseloadEntry      `json:"caseload"`
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	UnreadMessages       int                  `json:"unreadMessages"`
}

// AdminDashboard carries the headline KPIs
type AdminDashboard struct {
	TotalInjuries      int                       `json:"totalInjuries"`
	OpenInjuries       int                       `json:"openInjuries"`
	UnassignedInjuries int                       `json:"unassignedInjuries"`
	RecoveryRate       int                       `json:"recoveryRate"`
	RecurrenceRate     int                       `json:"recurrenceRate"`
	Workload           []reporting.WorkloadEntry `json:"workload"`
	Suggestion         *assignment.Suggestion    `json:"suggestion,omitempty"`
}
