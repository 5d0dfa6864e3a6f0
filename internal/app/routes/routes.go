package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/injurydesk/internal/app/controllers"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/middleware"
	"github.com/yigit/injurydesk/internal/pkg/websocket"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Dashboard    *controllers.DashboardController
	Injuries     *controllers.InjuryController
	Assignments  *controllers.AssignmentController
	Appointments *controllers.AppointmentController
	Messages     *controllers.MessageController
	Treatment    *controllers.TreatmentController
	RTP          *controllers.RTPController
	Analytics    *controllers.AnalyticsController
	WebSocket    *websocket.Handler
	// Health answers GET /health; nil reports ok unconditionally
	Health gin.HandlerFunc
}

// SetupRouter configures all application routes under /api/v1
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	health := c.Health
	if health == nil {
		health = func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
		}
	}
	v1.GET("/health", health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/sign-up", c.Auth.SignUp)
		auth.POST("/sign-in", c.Auth.SignIn)
		auth.POST("/refresh", c.Auth.Refresh)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	staff := authMiddleware.RoleRequired(models.RolePractitioner, models.RoleAdmin)
	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	authenticated.GET("/auth/me", c.Auth.Me)
	authenticated.GET("/dashboard", c.Dashboard.Get)

	users := authenticated.Group("/users")
	{
		users.GET("/practitioners", c.Users.ListPractitioners)
		users.GET("/students", staff, c.Users.ListStudents)
	}

	injuries := authenticated.Group("/injuries")
	{
		injuries.GET("", c.Injuries.List)
		injuries.POST("", authMiddleware.RoleRequired(models.RoleStudent), c.Injuries.Create)
		injuries.GET("/:id", c.Injuries.Get)
		injuries.PATCH("/:id", staff, c.Injuries.Update)
		injuries.POST("/:id/attachments", c.Injuries.AddAttachment)
		injuries.GET("/:id/recovery-logs", c.Injuries.ListRecoveryLogs)
		injuries.POST("/:id/recovery-logs", c.Injuries.AddRecoveryLog)
	}

	assignments := authenticated.Group("/assignments")
	{
		assignments.GET("", c.Assignments.List)
		assignments.GET("/suggestion", adminOnly, c.Assignments.Suggestion)
		assignments.POST("", adminOnly, c.Assignments.Create)
		assignments.POST("/:id/deactivate", adminOnly, c.Assignments.Deactivate)
	}

	appointments := authenticated.Group("/appointments")
	{
		appointments.GET("", c.Appointments.List)
		appointments.POST("", staff, c.Appointments.Create)
		appointments.PATCH("/:id/status", c.Appointments.UpdateStatus)
	}

	messages := authenticated.Group("/messages")
	{
		messages.GET("", c.Messages.Conversation)
		messages.POST("", c.Messages.Send)
		messages.POST("/:id/read", c.Messages.MarkRead)
	}

	templates := authenticated.Group("/treatment-templates")
	{
		templates.GET("", c.Treatment.ListTemplates)
		templates.POST("", staff, c.Treatment.CreateTemplate)
	}

	plans := authenticated.Group("/treatment-plans")
	{
		plans.GET("", c.Treatment.ListPlans)
		plans.POST("", authMiddleware.RoleRequired(models.RolePractitioner), c.Treatment.CreatePlan)
		plans.GET("/:id", c.Treatment.GetPlan)

		draft := plans.Group("/:id/draft", staff)
		{
			draft.GET("", c.Treatment.GetDraft)
			draft.PUT("", c.Treatment.PutDraft)
			draft.POST("/undo", c.Treatment.UndoDraft)
			draft.POST("/redo", c.Treatment.RedoDraft)
			draft.POST("/commit", c.Treatment.CommitDraft)
		}
	}

	checklists := authenticated.Group("/rtp-checklists")
	{
		checklists.GET("", c.RTP.List)
		checklists.POST("", authMiddleware.RoleRequired(models.RolePractitioner), c.RTP.Create)
		checklists.POST("/:id/clear", staff, c.RTP.Clear)
	}

	analytics := authenticated.Group("/analytics", adminOnly)
	{
		analytics.GET("", c.Analytics.Report)
		analytics.GET("/export", c.Analytics.Export)
	}

	if c.WebSocket != nil {
		authenticated.GET("/ws", c.WebSocket.HandleConnection)
	}
}
