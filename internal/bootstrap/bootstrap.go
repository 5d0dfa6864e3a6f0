package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/injurydesk/internal/app/auth"
	appControllers "github.com/yigit/injurydesk/internal/app/controllers"
	appMigrations "github.com/yigit/injurydesk/internal/app/migrations"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/notifier"
	"github.com/yigit/injurydesk/internal/app/realtime"
	appRepos "github.com/yigit/injurydesk/internal/app/repositories"
	appRoutes "github.com/yigit/injurydesk/internal/app/routes"
	appServices "github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/config"
	"github.com/yigit/injurydesk/internal/db"
	appMiddleware "github.com/yigit/injurydesk/internal/middleware"
	pkgAuth "github.com/yigit/injurydesk/internal/pkg/auth"
	"github.com/yigit/injurydesk/internal/pkg/email"
	"github.com/yigit/injurydesk/internal/pkg/filestorage"
	"github.com/yigit/injurydesk/internal/pkg/helpers"
	"github.com/yigit/injurydesk/internal/pkg/logger"
	"github.com/yigit/injurydesk/internal/pkg/validation"
	"github.com/yigit/injurydesk/internal/pkg/websocket"
	"github.com/yigit/injurydesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Gateway  *appRepos.Gateway
	Database *db.PostgresDB // nil unless the postgres backend is active

	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService
	FileStorage  *filestorage.LocalStorage
	Hub          *websocket.Hub

	AuthService        *appServices.AuthService
	UserService        appServices.UserService
	InjuryService      *appServices.InjuryService
	AssignmentService  *appServices.AssignmentService
	AppointmentService *appServices.AppointmentService
	MessageService     *appServices.MessageService
	TreatmentService   *appServices.TreatmentService
	RTPService         *appServices.RTPService
	AnalyticsService   *appServices.AnalyticsService
	DashboardService   *appServices.DashboardService

	Notifier *notifier.Notifier // nil when disabled
	Relay    *realtime.Relay    // nil unless the postgres backend is active

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the postgres pool and applies the bundled migrations.
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	applied, err := appMigrations.NewMigrator(database, lgr).Migrate(ctx, appMigrations.Files())
	if err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations up to date.")

	return database, nil
}

// SetupGateway builds the data gateway for the configured backend.
// The returned database is nil for the fixture and memory backends.
func SetupGateway(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Gateway, *db.PostgresDB, error) {
	backend := cfg.ResolvedBackend()
	lgr.Info().Str("backend", backend).Msg("Selecting data backend")

	switch backend {
	case config.BackendPostgres:
		database, err := ConnectDatabase(ctx, cfg, lgr)
		if err != nil {
			return nil, nil, err
		}
		gw := appRepos.NewPostgresGateway(database.Pool)
		if err := seed.CreateDefaultData(ctx, gw, "", lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
		return gw, database, nil

	case config.BackendFixture, config.BackendMemory:
		data, err := seed.DemoData(time.Now().UTC())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build demo data: %w", err)
		}
		if backend == config.BackendMemory {
			return appRepos.NewMemoryGateway(data), nil, nil
		}
		return appRepos.NewFixtureGateway(data, cfg.Backend.FixtureLatency), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// BuildDependencies initializes services, background workers and controllers on top of gw.
func BuildDependencies(cfg *config.Config, gw *appRepos.Gateway, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Gateway: gw, Database: database, Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.PublicBaseURL()+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(gw)
	deps.Hub = websocket.NewHub(logger.Component("websocket").Logger)

	// Services
	deps.AuthService = appServices.NewAuthService(gw, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(gw, deps.AuthzService, lgr)
	deps.InjuryService = appServices.NewInjuryService(gw, deps.AuthzService, deps.FileStorage, deps.Hub, lgr)
	deps.AssignmentService = appServices.NewAssignmentService(gw, deps.Hub, lgr)
	deps.AppointmentService = appServices.NewAppointmentService(gw, deps.AuthzService, lgr)
	deps.MessageService = appServices.NewMessageService(gw, deps.Hub, lgr)
	deps.TreatmentService = appServices.NewTreatmentService(gw, deps.AuthzService, lgr)
	deps.RTPService = appServices.NewRTPService(gw, deps.AuthzService, deps.Hub, lgr)
	deps.AnalyticsService = appServices.NewAnalyticsService(gw, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		gw,
		deps.AuthzService,
		deps.AnalyticsService,
		deps.AssignmentService,
		deps.MessageService,
		lgr,
	)

	// Background workers
	if cfg.Notifier.Enabled {
		var mailer email.EmailService
		smtp := email.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromName:  cfg.SMTP.FromName,
			FromEmail: cfg.SMTP.FromEmail,
			UseTLS:    cfg.SMTP.UseTLS,
		}
		if smtp.Configured() {
			mailer = email.NewEmailService(smtp, logger.Component("email").Logger)
		} else {
			lgr.Info().Msg("SMTP not configured, appointment reminders are realtime only")
		}
		deps.Notifier = notifier.New(
			notifier.Config{Interval: cfg.Notifier.Interval, Lookahead: cfg.Notifier.Lookahead},
			deps.AppointmentService,
			gw.Users,
			deps.Hub,
			mailer,
			lgr,
		)
	}
	if database != nil {
		deps.Relay = realtime.NewRelay(realtime.PoolConnector(database), deps.Hub, lgr)
	}

	// HTTP layer
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)
	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, lgr),
		Users:        appControllers.NewUserController(deps.UserService),
		Dashboard:    appControllers.NewDashboardController(deps.DashboardService),
		Injuries:     appControllers.NewInjuryController(deps.InjuryService, lgr),
		Assignments:  appControllers.NewAssignmentController(deps.AssignmentService, lgr),
		Appointments: appControllers.NewAppointmentController(deps.AppointmentService),
		Messages:     appControllers.NewMessageController(deps.MessageService),
		Treatment:    appControllers.NewTreatmentController(deps.TreatmentService),
		RTP:          appControllers.NewRTPController(deps.RTPService, lgr),
		Analytics:    appControllers.NewAnalyticsController(deps.AnalyticsService),
		WebSocket:    websocket.NewHandler(deps.Hub, logger.Component("websocket").Logger),
		Health:       healthHandler(gw, database),
	}

	return deps, nil
}

func healthHandler(gw *appRepos.Gateway, database *db.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok", "backend": gw.Mode()}
		if database != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := database.Ping(ctx); err != nil {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable").
					WithDetails(err.Error()).
					WithSeverity(dto.ErrorSeverityCritical)
				c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
				return
			}
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(status))
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(lgr), appMiddleware.RequestLogger(logger.Component("http").Logger))
	router.MaxMultipartMemory = appServices.MaxAttachmentSize

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	appRoutes.SetupSwagger(router)

	router.Static("/uploads", deps.FileStorage.Root())
	lgr.Info().Str("path", deps.FileStorage.Root()).Msg("Static file serving configured for uploads directory")

	return router, nil
}
