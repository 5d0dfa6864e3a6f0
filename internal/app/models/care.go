package models

import "time"

// Appointment is a scheduled session between a student and a practitioner
type Appointment struct {
	ID              string            `json:"id" db:"id"`
	StudentID       string            `json:"studentId" db:"student_id"`
	PractitionerID  string            `json:"practitionerId" db:"practitioner_id"`
	InjuryID        *string           `json:"injuryId,omitempty" db:"injury_id"`
	ScheduledAt     time.Time         `json:"scheduledAt" db:"scheduled_at"`
	DurationMinutes int               `json:"durationMinutes" db:"duration_minutes"`
	Location        string            `json:"location" db:"location"`
	Status          AppointmentStatus `json:"status" db:"status"`
	Notes           string            `json:"notes" db:"notes"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
}

// Message is a direct message between two users
type Message struct {
	ID         string    `json:"id" db:"id"`
	SenderID   string    `json:"senderId" db:"sender_id"`
	ReceiverID string    `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	Read       bool      `json:"read" db:"read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// TreatmentTemplate is a reusable treatment protocol
type TreatmentTemplate struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	InjuryType  string    `json:"injuryType" db:"injury_type"`
	Description string    `json:"description" db:"description"`
	Steps       []string  `json:"steps" db:"steps"`
	CreatedBy   string    `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// TreatmentPlan is a practitioner's plan for one injury
type TreatmentPlan struct {
	ID             string     `json:"id" db:"id"`
	InjuryID       string     `json:"injuryId" db:"injury_id"`
	StudentID      string     `json:"studentId" db:"student_id"`
	PractitionerID string     `json:"practitionerId" db:"practitioner_id"`
	TemplateID     *string    `json:"templateId,omitempty" db:"template_id"`
	Title          string     `json:"title" db:"title"`
	Steps          []string   `json:"steps" db:"steps"`
	Status         PlanStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// File represents an uploaded object in storage
type File struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"ownerId" db:"owner_id"`
	InjuryID  *string   `json:"injuryId,omitempty" db:"injury_id"`
	Key       string    `json:"key" db:"storage_key"`
	URL       string    `json:"url" db:"url"`
	FileName  string    `json:"fileName" db:"file_name"`
	Size      int64     `json:"size" db:"size"`
	MimeType  string    `json:"mimeType" db:"mime_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
