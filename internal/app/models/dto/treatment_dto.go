package dto

import (
	"github.com/yigit/injurydesk/internal/app/models"
)

// CreateTemplateRequest defines a reusable treatment protocol
type CreateTemplateRequest struct {
	Name        string   `json:"name" binding:"required,max=200" example:"Hamstring rehab"`
	InjuryType  string   `json:"injuryType" binding:"max=200" example:"Hamstring strain"`
	Description string   `json:"description" binding:"max=4000"`
	Steps       []string `json:"steps" binding:"required,min=1,dive,required,max=500"`
}

// CreatePlanRequest starts a treatment plan, optionally from a template.
// Steps default to the template's steps when omitted.
type CreatePlanRequest struct {
	InjuryID   string   `json:"injuryId" binding:"required"`
	TemplateID *string  `json:"templateId,omitempty"`
	Title      string   `json:"title" binding:"required,max=200"`
	Steps      []string `json:"steps" binding:"omitempty,dive,required,max=500"`
}

// PlanDraftRequest replaces the working copy of a plan
type PlanDraftRequest struct {
	Title string   `json:"title" binding:"required,max=200"`
	Steps []string `json:"steps" binding:"dive,required,max=500"`
}

// PlanDraft is the editable content of a plan
type PlanDraft struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// PlanDraftResponse is the working copy plus its history position
type PlanDraftResponse struct {
	PlanID    string    `json:"planId"`
	Draft     PlanDraft `json:"draft"`
	CanUndo   bool      `json:"canUndo"`
	CanRedo   bool      `json:"canRedo"`
	UndoDepth int       `json:"undoDepth"`
	RedoDepth int       `json:"redoDepth"`
}

// PlanDetail is a plan with its template
type PlanDetail struct {
	Plan     models.TreatmentPlan      `json:"plan"`
	Template *models.TreatmentTemplate `json:"template,omitempty"`
	HasDraft bool                      `json:"hasDraft"`
}
