package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// DashboardController serves the landing summary
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Get returns the caller's dashboard
// @Summary Role-conditioned dashboard
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.Dashboard}
// @Router /dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	dashboard, err := c.dashboardService.Get(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dashboard)
}
