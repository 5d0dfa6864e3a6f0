package dto

import (
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// CreateInjuryRequest is a student's injury report
type CreateInjuryRequest struct {
	InjuryType   string          `json:"injuryType" binding:"required,max=200" example:"Hamstring strain"`
	Severity     models.Severity `json:"severity" binding:"required,severity" example:"moderate"`
	BodyPart     string          `json:"bodyPart" binding:"required,max=100" example:"Left thigh"`
	Description  string          `json:"description" binding:"max=4000"`
	DateOccurred *time.Time      `json:"dateOccurred,omitempty" example:"2024-03-01T15:04:05Z"`
}

// UpdateInjuryRequest changes the clinical progress of an injury. Omitted fields are left alone;
// clearDaysLost and clearDateReturned reset the optional fields.
type UpdateInjuryRequest struct {
	Status            *models.InjuryStatus `json:"status,omitempty" binding:"omitempty,injurystatus" example:"in_treatment"`
	DaysLost          *int                 `json:"daysLost,omitempty" binding:"omitempty,min=0,max=3650" example:"14"`
	DateReturned      *time.Time           `json:"dateReturned,omitempty"`
	ClearDaysLost     bool                 `json:"clearDaysLost,omitempty"`
	ClearDateReturned bool                 `json:"clearDateReturned,omitempty"`
}

// InjuryDetail is an injury with the people and files around it
type InjuryDetail struct {
	Injury        models.Injury       `json:"injury"`
	Student       *UserSummary        `json:"student,omitempty"`
	Practitioners []UserSummary       `json:"practitioners"`
	Attachments   []models.File       `json:"attachments"`
	Assignments   []models.Assignment `json:"assignments"`
	DaysLost      int                 `json:"daysLost"`
}

// CreateRecoveryLogRequest is a student's recovery self-report
type CreateRecoveryLogRequest struct {
	PainLevel *int   `json:"painLevel" binding:"required,min=0,max=10" example:"4"`
	Mobility  *int   `json:"mobility" binding:"required,min=0,max=10" example:"6"`
	Notes     string `json:"notes" binding:"max=2000"`
}
