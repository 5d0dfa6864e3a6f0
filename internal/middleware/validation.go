package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/models/dto"
)

// BindJSON binds and validates the request body into obj.
// On failure it writes a 400 response and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
