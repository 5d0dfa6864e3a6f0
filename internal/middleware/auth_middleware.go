package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	SessionKey = "session"
	UserIDKey  = "userID"
)

// Authenticator resolves an access token into a session
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (appauth.Session, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	authenticator Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

func unauthorized(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// tokenFrom reads the bearer token from the Authorization header, falling back to
// the token query parameter for websocket clients that cannot set headers
func tokenFrom(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		token, err := auth.ExtractBearerToken(strings.Trim(header, "\"'"))
		if err != nil {
			return "", false
		}
		return token, true
	}
	if token := c.Query("token"); token != "" {
		return token, true
	}
	return "", false
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFrom(c)
		if !ok {
			unauthorized(c, "Authorization header missing or malformed")
			return
		}

		session, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Set(UserIDKey, session.UserID)
		c.Next()
	}
}

// RoleRequired middleware to check if user has one of the required roles
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			unauthorized(c, "User session not found")
			return
		}

		if !session.Is(roles...) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// SessionFrom returns the session stored by JWTAuth
func SessionFrom(c *gin.Context) (appauth.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return appauth.Session{}, false
	}
	session, ok := value.(appauth.Session)
	return session, ok
}
