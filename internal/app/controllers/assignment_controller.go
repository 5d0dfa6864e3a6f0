package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/assignment"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// AssignmentController handles practitioner assignments
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// List returns the assignments visible to the caller
// @Summary List assignments
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Router /assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	assignments, err := c.assignmentService.List(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, assignments)
}

// Create assigns a practitioner to an injury
// @Summary Assign a practitioner
// @Description Creates an active assignment and moves a reported injury to assigned
// @Tags assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Failure 403 {object} dto.APIResponse
// @Router /assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	a, err := c.assignmentService.Create(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("assignmentID", a.ID).
		Str("injuryID", a.InjuryID).
		Str("practitionerID", a.PractitionerID).
		Msg("Practitioner assigned")
	respondCreated(ctx, a)
}

// Deactivate closes an assignment
// @Summary Deactivate an assignment
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Router /assignments/{id}/deactivate [post]
func (c *AssignmentController) Deactivate(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	a, err := c.assignmentService.Deactivate(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, a)
}

// Suggestion proposes a practitioner for the oldest open injury.
// data is null when there is nothing to suggest.
// @Summary Suggest an assignment
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Param criteria query string false "Comma separated: specialization, workload"
// @Success 200 {object} dto.APIResponse{data=assignment.Suggestion}
// @Failure 400 {object} dto.APIResponse "Unknown criterion"
// @Router /assignments/suggestion [get]
func (c *AssignmentController) Suggestion(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	criteria, err := assignment.ParseCriteria(ctx.Query("criteria"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	suggestion, err := c.assignmentService.Suggest(ctx.Request.Context(), s, criteria)
	if services.IsNoSuggestion(err) {
		respondOK(ctx, nil)
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, suggestion)
}
