package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// MessageController handles direct messages
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// Conversation returns the messages exchanged with another user, oldest first
// @Summary Conversation with a user
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param with query string true "Other participant's user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message}
// @Router /messages [get]
func (c *MessageController) Conversation(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	withID := ctx.Query("with")
	if withID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Query parameter 'with' is required").WithField("with")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	messages, err := c.messageService.Conversation(ctx.Request.Context(), s, withID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, messages)
}

// Send posts a message
// @Summary Send a message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.Message}
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	message, err := c.messageService.Send(ctx.Request.Context(), s, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, message)
}

// MarkRead marks a received message as read
// @Summary Mark a message read
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.APIResponse{data=models.Message}
// @Router /messages/{id}/read [post]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	message, err := c.messageService.MarkRead(ctx.Request.Context(), s, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, message)
}
