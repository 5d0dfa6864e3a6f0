package dto

import (
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// SignUpRequest represents a self-registration request
type SignUpRequest struct {
	Email          string          `json:"email" binding:"required,email" example:"athlete@uni.edu"`
	Password       string          `json:"password" binding:"required,min=8" example:"Password123!"`
	FullName       string          `json:"fullName" binding:"required,min=2,max=100" example:"Jamie Doe"`
	RoleType       models.RoleType `json:"roleType" binding:"required,signuprole" example:"student"`
	Sport          string          `json:"sport,omitempty" binding:"max=100" example:"Football"`
	Specialization string          `json:"specialization,omitempty" binding:"max=100" example:"Physiotherapy"`
}

// SignInRequest represents login credentials
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"athlete@uni.edu"`
	Password string `json:"password" binding:"required" example:"Password123!"`
}

// RefreshTokenRequest carries a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"2592000"`
}

// AuthResponse is returned by sign-up, sign-in and refresh
type AuthResponse struct {
	User  UserSummary   `json:"user"`
	Token TokenResponse `json:"token"`
}

// UserSummary is the public view of a user
type UserSummary struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	FullName       string          `json:"fullName"`
	RoleType       models.RoleType `json:"roleType"`
	Sport          *string         `json:"sport,omitempty"`
	Specialization *string         `json:"specialization,omitempty"`
	LastLoginAt    *time.Time      `json:"lastLoginAt,omitempty"`
}

// NewUserSummary converts a stored user
func NewUserSummary(u models.User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		RoleType:       u.RoleType,
		Sport:          u.Sport,
		Specialization: u.Specialization,
		LastLoginAt:    u.LastLoginAt,
	}
}

// NewUserSummaries converts a list of users
func NewUserSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserSummary(u))
	}
	return out
}
