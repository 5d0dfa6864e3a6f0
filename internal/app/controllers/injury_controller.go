package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
	"github.com/yigit/injurydesk/internal/pkg/helpers"
)

// InjuryController handles injury reports, attachments and recovery logs
type InjuryController struct {
	injuryService *services.InjuryService
	logger        zerolog.Logger
}

// NewInjuryController creates a new InjuryController
func NewInjuryController(injuryService *services.InjuryService, logger zerolog.Logger) *InjuryController {
	return &InjuryController{
		injuryService: injuryService,
		logger:        logger,
	}
}

// filterFromQuery reads the shared start/end/sport/severity parameters
func filterFromQuery(ctx *gin.Context) (reporting.Filter, error) {
	return reporting.ParseFilter(ctx.Query("start"), ctx.Query("end"), ctx.Query("sport"), ctx.Query("severity"))
}

// List returns the injuries visible to the caller
// @Summary List injuries
// @Description Students see their own injuries, practitioners their active caseload, admins everything.
// @Description Passing page or size returns a paginated response instead of a plain list.
// @Tags injuries
// @Security BearerAuth
// @Produce json
// @Param start query string false "Reported on or after (YYYY-MM-DD)"
// @Param end query string false "Reported on or before (YYYY-MM-DD)"
// @Param sport query string false "Student sport"
// @Param severity query string false "mild, moderate, severe or critical"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Injury}
// @Router /injuries [get]
func (c *InjuryController) List(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	filter, err := filterFromQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	injuries, err := c.injuryService.List(ctx.Request.Context(), s, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, paged := ctx.GetQuery("page"); !paged {
		if _, paged = ctx.GetQuery("size"); !paged {
			respondOK(ctx, injuries)
			return
		}
	}
	page, size := helpers.ParsePaginationParams(ctx)
	respondOK(ctx, helpers.Paginate(injuries, page, size))
}

// Create reports a new injury for the signed-in student
// @Summary Report an injury
// @Tags injuries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInjuryRequest true "Injury report"
// @Success 201 {object} dto.APIResponse{data=models.Injury}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Only students report injuries"
// @Router /injuries [post]
func (c *InjuryController) Create(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreateInjuryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	injury, err := c.injuryService.Create(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("injuryID", injury.ID).Str("studentID", injury.StudentID).Msg("Injury reported")
	respondCreated(ctx, injury)
}

// Get returns one injury with its people, attachments and assignments
// @Summary Injury detail
// @Tags injuries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Injury ID"
// @Success 200 {object} dto.APIResponse{data=dto.InjuryDetail}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /injuries/{id} [get]
func (c *InjuryController) Get(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	detail, err := c.injuryService.Get(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, detail)
}

// Update changes status, days lost or return date
// @Summary Update injury progress
// @Tags injuries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Injury ID"
// @Param request body dto.UpdateInjuryRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Injury}
// @Failure 503 {object} dto.APIResponse "Fixture backend is read-only"
// @Router /injuries/{id} [patch]
func (c *InjuryController) Update(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.UpdateInjuryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	injury, err := c.injuryService.Update(ctx.Request.Context(), s, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, injury)
}

// AddAttachment uploads a file to an injury
// @Summary Attach a file
// @Tags injuries
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Injury ID"
// @Param file formData file true "Scan, report or photo"
// @Success 201 {object} dto.APIResponse{data=models.File}
// @Failure 400 {object} dto.APIResponse
// @Router /injuries/{id}/attachments [post]
func (c *InjuryController) AddAttachment(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "A file is required").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.injuryService.AddAttachment(ctx.Request.Context(), s, ctx.Param("id"), fileHeader)
	if err != nil {
		c.logger.Warn().Err(err).Str("injuryID", ctx.Param("id")).Msg("Attachment upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, file)
}

// ListRecoveryLogs returns an injury's recovery logs, newest first
// @Summary Recovery logs
// @Tags injuries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Injury ID"
// @Success 200 {object} dto.APIResponse{data=[]models.RecoveryLog}
// @Router /injuries/{id}/recovery-logs [get]
func (c *InjuryController) ListRecoveryLogs(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	logs, err := c.injuryService.ListRecoveryLogs(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, logs)
}

// AddRecoveryLog records pain and mobility for the student's own injury
// @Summary Log recovery progress
// @Tags injuries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Injury ID"
// @Param request body dto.CreateRecoveryLogRequest true "Pain and mobility on a 0-10 scale"
// @Success 201 {object} dto.APIResponse{data=models.RecoveryLog}
// @Router /injuries/{id}/recovery-logs [post]
func (c *InjuryController) AddRecoveryLog(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreateRecoveryLogRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	log, err := c.injuryService.AddRecoveryLog(ctx.Request.Context(), s, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, log)
}
