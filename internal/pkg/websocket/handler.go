package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades authenticated requests to websocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Open the realtime event stream
// @Description Upgrades to a websocket that receives message.created and appointment.upcoming events for the caller
// @Tags realtime
// @Security BearerAuth
// @Param token query string false "Access token, for clients that cannot set headers"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} dto.APIResponse
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Set by the JWT middleware
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("userID", userID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		userID: userID,
		logger: h.logger,
	}
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("userID", userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
