// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/middleware"
)

// session returns the caller resolved by the JWT middleware, writing 401 when absent
func session(ctx *gin.Context) (appauth.Session, bool) {
	s, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
	return s, ok
}

func respondOK(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

func respondCreated(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}
