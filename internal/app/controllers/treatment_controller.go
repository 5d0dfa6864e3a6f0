package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// TreatmentController handles templates, plans and plan drafts
type TreatmentController struct {
	treatmentService *services.TreatmentService
}

// NewTreatmentController creates a new TreatmentController
func NewTreatmentController(treatmentService *services.TreatmentService) *TreatmentController {
	return &TreatmentController{treatmentService: treatmentService}
}

// ListTemplates returns every treatment template by name
// @Summary List treatment templates
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TreatmentTemplate}
// @Router /treatment-templates [get]
func (c *TreatmentController) ListTemplates(ctx *gin.Context) {
	templates, err := c.treatmentService.ListTemplates(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, templates)
}

// CreateTemplate stores a reusable list of steps
// @Summary Create a treatment template
// @Tags treatment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "Template"
// @Success 201 {object} dto.APIResponse{data=models.TreatmentTemplate}
// @Router /treatment-templates [post]
func (c *TreatmentController) CreateTemplate(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreateTemplateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	template, err := c.treatmentService.CreateTemplate(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, template)
}

// ListPlans returns the plans visible to the caller
// @Summary List treatment plans
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TreatmentPlan}
// @Router /treatment-plans [get]
func (c *TreatmentController) ListPlans(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	plans, err := c.treatmentService.ListPlans(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, plans)
}

// CreatePlan starts a plan for an injury in the practitioner's caseload
// @Summary Create a treatment plan
// @Tags treatment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Plan"
// @Success 201 {object} dto.APIResponse{data=models.TreatmentPlan}
// @Router /treatment-plans [post]
func (c *TreatmentController) CreatePlan(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreatePlanRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	plan, err := c.treatmentService.CreatePlan(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, plan)
}

// GetPlan returns a plan with its template
// @Summary Treatment plan detail
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlanDetail}
// @Router /treatment-plans/{id} [get]
func (c *TreatmentController) GetPlan(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	plan, err := c.treatmentService.GetPlan(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, plan)
}

type draftAction func(ctx context.Context, session appauth.Session, planID string) (*dto.PlanDraftResponse, error)

func (c *TreatmentController) draft(ctx *gin.Context, action draftAction) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	draft, err := action(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, draft)
}

// GetDraft returns the working copy of a plan, opening one if needed
// @Summary Plan draft
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlanDraftResponse}
// @Router /treatment-plans/{id}/draft [get]
func (c *TreatmentController) GetDraft(ctx *gin.Context) {
	c.draft(ctx, c.treatmentService.GetDraft)
}

// PutDraft records a new version of the working copy
// @Summary Edit plan draft
// @Tags treatment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body dto.PlanDraftRequest true "Draft content"
// @Success 200 {object} dto.APIResponse{data=dto.PlanDraftResponse}
// @Router /treatment-plans/{id}/draft [put]
func (c *TreatmentController) PutDraft(ctx *gin.Context) {
	var req dto.PlanDraftRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.draft(ctx, func(ctx context.Context, s appauth.Session, planID string) (*dto.PlanDraftResponse, error) {
		return c.treatmentService.PutDraft(ctx, s, planID, &req)
	})
}

// UndoDraft steps the working copy back
// @Summary Undo plan draft edit
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlanDraftResponse}
// @Failure 409 {object} dto.APIResponse "Nothing to undo"
// @Router /treatment-plans/{id}/draft/undo [post]
func (c *TreatmentController) UndoDraft(ctx *gin.Context) {
	c.draft(ctx, c.treatmentService.UndoDraft)
}

// RedoDraft steps the working copy forward
// @Summary Redo plan draft edit
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlanDraftResponse}
// @Failure 409 {object} dto.APIResponse "Nothing to redo"
// @Router /treatment-plans/{id}/draft/redo [post]
func (c *TreatmentController) RedoDraft(ctx *gin.Context) {
	c.draft(ctx, c.treatmentService.RedoDraft)
}

// CommitDraft saves the working copy onto the plan
// @Summary Commit plan draft
// @Tags treatment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=models.TreatmentPlan}
// @Failure 404 {object} dto.APIResponse "No draft in progress"
// @Router /treatment-plans/{id}/draft/commit [post]
func (c *TreatmentController) CommitDraft(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	plan, err := c.treatmentService.CommitDraft(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, plan)
}
