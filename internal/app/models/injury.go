package models

import "time"

// Injury is a reported student-athlete injury
type Injury struct {
	ID           string       `json:"id" db:"id"`
	StudentID    string       `json:"studentId" db:"student_id"`
	InjuryType   string       `json:"injuryType" db:"injury_type" example:"Hamstring strain"`
	Severity     Severity     `json:"severity" db:"severity" example:"moderate"`
	BodyPart     string       `json:"bodyPart" db:"body_part" example:"Left thigh"`
	Description  string       `json:"description" db:"description"`
	DateOccurred *time.Time   `json:"dateOccurred,omitempty" db:"date_occurred"`
	DateReported time.Time    `json:"dateReported" db:"date_reported"`
	Status       InjuryStatus `json:"status" db:"status" example:"reported"`
	DaysLost     *int         `json:"daysLost,omitempty" db:"days_lost"`
	DateReturned *time.Time   `json:"dateReturned,omitempty" db:"date_returned"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// Assignment links a practitioner to a student's injury
type Assignment struct {
	ID             string    `json:"id" db:"id"`
	StudentID      string    `json:"studentId" db:"student_id"`
	PractitionerID string    `json:"practitionerId" db:"practitioner_id"`
	InjuryID       string    `json:"injuryId" db:"injury_id"`
	Active         bool      `json:"active" db:"active"`
	Notes          string    `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// RecoveryLog is a student's self-reported recovery entry
type RecoveryLog struct {
	ID        string    `json:"id" db:"id"`
	InjuryID  string    `json:"injuryId" db:"injury_id"`
	StudentID string    `json:"studentId" db:"student_id"`
	PainLevel int       `json:"painLevel" db:"pain_level"` // 0-10
	Mobility  int       `json:"mobility" db:"mobility"`    // 0-10
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RTPChecklist is a return-to-play clearance checklist
type RTPChecklist struct {
	ID             string          `json:"id" db:"id"`
	InjuryID       string          `json:"injuryId" db:"injury_id"`
	StudentID      string          `json:"studentId" db:"student_id"`
	PractitionerID string          `json:"practitionerId" db:"practitioner_id"`
	Items          []string        `json:"items" db:"items"`
	Status         ChecklistStatus `json:"status" db:"status"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	ClearedAt      *time.Time      `json:"clearedAt,omitempty" db:"cleared_at"`
}
