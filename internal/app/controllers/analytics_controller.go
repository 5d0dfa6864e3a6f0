package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// AnalyticsController serves the admin reports and CSV export
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// Report returns the filtered analytics bundle
// @Summary Injury analytics
// @Description The applied filter is echoed back so a shared link reproduces the view
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param start query string false "Reported on or after (YYYY-MM-DD)"
// @Param end query string false "Reported on or before (YYYY-MM-DD)"
// @Param sport query string false "Student sport"
// @Param severity query string false "mild, moderate, severe or critical"
// @Param dense query bool false "Zero-fill missing months in the trend"
// @Success 200 {object} dto.APIResponse{data=reporting.Report}
// @Router /analytics [get]
func (c *AnalyticsController) Report(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	filter, err := filterFromQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	dense := false
	if raw := ctx.Query("dense"); raw != "" {
		dense, err = strconv.ParseBool(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "dense must be true or false").WithField("dense")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	report, err := c.analyticsService.Report(ctx.Request.Context(), s, filter, dense)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, report)
}

// Export downloads the filtered injuries as CSV
// @Summary Export injuries as CSV
// @Tags analytics
// @Security BearerAuth
// @Produce text/csv
// @Param start query string false "Reported on or after (YYYY-MM-DD)"
// @Param end query string false "Reported on or before (YYYY-MM-DD)"
// @Param sport query string false "Student sport"
// @Param severity query string false "mild, moderate, severe or critical"
// @Param context query string false "File name prefix, defaults to injuries"
// @Success 200 {file} file
// @Router /analytics/export [get]
func (c *AnalyticsController) Export(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	filter, err := filterFromQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := c.analyticsService.Export(ctx.Request.Context(), s, filter, &buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := reporting.ExportFilename(ctx.Query("context"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
