package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             string     `json:"id" db:"id" example:"5f0c8a4e-7d1b-4c1e-9c55-2a4f0d6c1b11"` // Unique identifier for the user
	Email          string     `json:"email" db:"email" example:"athlete@uni.edu"`                 // User's email address
	Password       string     `json:"-" db:"password"`                                            // User's hashed password (excluded from JSON)
	FullName       string     `json:"fullName" db:"full_name" example:"Jamie Doe"`                // Display name
	RoleType       RoleType   `json:"roleType" db:"role" example:"student"`                       // student, practitioner or admin
	Sport          *string    `json:"sport,omitempty" db:"sport" example:"Football"`              // Students only
	Specialization *string    `json:"specialization,omitempty" db:"specialization"`               // Practitioners only
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// DisplayName returns the full name, falling back to the email
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// SportName returns the student's sport or an empty string
func (u *User) SportName() string {
	if u == nil || u.Sport == nil {
		return ""
	}
	return *u.Sport
}

// SpecializationName returns the practitioner's specialization or an empty string
func (u *User) SpecializationName() string {
	if u == nil || u.Specialization == nil {
		return ""
	}
	return *u.Specialization
}
