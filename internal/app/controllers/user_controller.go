package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListPractitioners returns every practitioner, for assignment and messaging pickers
// @Summary List practitioners
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary}
// @Router /users/practitioners [get]
func (c *UserController) ListPractitioners(ctx *gin.Context) {
	users, err := c.userService.ListPractitioners(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, users)
}

// ListStudents returns the students visible to the caller
// @Summary List students
// @Description Admins see every student, practitioners only their active caseload
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary}
// @Failure 403 {object} dto.APIResponse
// @Router /users/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	users, err := c.userService.ListStudents(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, users)
}
