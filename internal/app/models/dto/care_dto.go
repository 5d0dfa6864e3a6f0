package dto

import (
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// CreateAssignmentRequest assigns a practitioner to an injury
type CreateAssignmentRequest struct {
	InjuryID       string `json:"injuryId" binding:"required"`
	PractitionerID string `json:"practitionerId" binding:"required"`
	Notes          string `json:"notes" binding:"max=2000"`
}

// CreateAppointmentRequest schedules an appointment. PractitionerID is taken
// from the session for practitioners and required for admins.
type CreateAppointmentRequest struct {
	StudentID       string    `json:"studentId" binding:"required"`
	PractitionerID  string    `json:"practitionerId,omitempty"`
	InjuryID        *string   `json:"injuryId,omitempty"`
	ScheduledAt     time.Time `json:"scheduledAt" binding:"required" example:"2024-05-01T14:30:00Z"`
	DurationMinutes int       `json:"durationMinutes" binding:"omitempty,min=5,max=480" example:"45"`
	Location        string    `json:"location" binding:"max=200" example:"Physio room 2"`
	Notes           string    `json:"notes" binding:"max=2000"`
}

// UpdateAppointmentStatusRequest completes or cancels an appointment
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled" example:"completed"`
}

// SendMessageRequest is a direct message
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required,max=4000"`
}

// CreateChecklistRequest opens a return-to-play checklist for an injury
type CreateChecklistRequest struct {
	InjuryID string   `json:"injuryId" binding:"required"`
	Items    []string `json:"items" binding:"required,min=1,dive,required,max=200"`
}

// ChecklistClearance is the outcome of clearing a checklist
type ChecklistClearance struct {
	Checklist   models.RTPChecklist `json:"checklist"`
	Injury      models.Injury       `json:"injury"`
	DaysToClear int                 `json:"daysToClear"`
}
