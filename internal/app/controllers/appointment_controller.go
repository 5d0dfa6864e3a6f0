package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// AppointmentController handles appointment scheduling
type AppointmentController struct {
	appointmentService *services.AppointmentService
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(appointmentService *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointmentService: appointmentService}
}

// List returns the caller's appointments ordered by start time
// @Summary List appointments
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Appointment}
// @Router /appointments [get]
func (c *AppointmentController) List(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	appointments, err := c.appointmentService.List(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, appointments)
}

// Create schedules an appointment
// @Summary Schedule an appointment
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} dto.APIResponse{data=models.Appointment}
// @Router /appointments [post]
func (c *AppointmentController) Create(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.CreateAppointmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	appointment, err := c.appointmentService.Create(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, appointment)
}

// UpdateStatus completes or cancels an appointment
// @Summary Change appointment status
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Appointment}
// @Router /appointments/{id}/status [patch]
func (c *AppointmentController) UpdateStatus(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	appointment, err := c.appointmentService.UpdateStatus(ctx.Request.Context(), s, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, appointment)
}
