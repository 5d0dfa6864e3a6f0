package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Creates a student or practitioner account and returns a token pair. Admin accounts cannot sign up.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request format or invalid role type"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 503 {object} dto.APIResponse "Fixture backend cannot register users"
// @Router /auth/sign-up [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if !middleware.BindJSON(ctx, &req) {
		c.logger.Warn().Msg("Invalid sign-up request payload")
		return
	}

	resp, err := c.authService.SignUp(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Sign-up failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userID", resp.User.ID).Str("roleType", string(resp.User.RoleType)).Msg("User signed up")
	respondCreated(ctx, resp)
}

// SignIn handles user login
// @Summary User login
// @Description Authenticates a user and returns an access and refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/sign-in [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.SignIn(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Sign-in failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Refresh issues a new token pair
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.APIResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Me returns the signed-in user
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserSummary}
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	s, authed := session(ctx)
	if !authed {
		return
	}

	user, err := c.authService.Me(ctx.Request.Context(), s)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, user)
}
