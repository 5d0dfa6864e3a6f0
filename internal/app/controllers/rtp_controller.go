package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// RTPController handles return-to-play checklists
type RTPController struct {
	rtpService *services.RTPService
	logger     zerolog.Logger
}

// NewRTPController creates a new RTPController
func NewRTPController(rtpService *services.RTPService, logger zerolog.Logger) *RTPController {
	return &RTPController{
		rtpService: rtpService,
		logger:     logger,
	}
}

// List returns the checklists visible to the caller
// @Summary List return-to-play checklists
// @Tags rtp
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RTPChecklist}
// @Router /rtp-checklists [get]
func (c *RTPController) List(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	checklists, err := c.rtpService.List(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, checklists)
}

// Create opens a checklist for an injury
// @Summary Open a return-to-play checklist
// @Tags rtp
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateChecklistRequest true "Checklist"
// @Success 201 {object} dto.APIResponse{data=models.RTPChecklist}
// @Router /rtp-checklists [post]
func (c *RTPController) Create(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreateChecklistRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	checklist, err := c.rtpService.Create(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, checklist)
}

// Clear clears the athlete to play and resolves the injury
// @Summary Clear a checklist
// @Tags rtp
// @Security BearerAuth
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChecklistClearance}
// @Failure 409 {object} dto.APIResponse "Already cleared"
// @Router /rtp-checklists/{id}/clear [post]
func (c *RTPController) Clear(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	clearance, err := c.rtpService.Clear(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("checklistID", clearance.Checklist.ID).
		Str("injuryID", clearance.Injury.ID).
		Int("daysToClear", clearance.DaysToClear).
		Msg("Athlete cleared to play")
	respondOK(ctx, clearance)
}
