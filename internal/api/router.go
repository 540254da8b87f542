package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/api/handler"
	"github.com/medcore/healthcare-api/internal/api/middleware"
	"github.com/medcore/healthcare-api/internal/auth"
	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
	"github.com/medcore/healthcare-api/internal/core/service"
	"github.com/medcore/healthcare-api/internal/crypto"
	"github.com/medcore/healthcare-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/medcore/healthcare-api/internal/infrastructure/db/redis"
	"github.com/medcore/healthcare-api/internal/pkg/config"
)

// Deps bundles everything the router needs. Redis and Audit may be nil; the
// affected features degrade gracefully.
type Deps struct {
	DB     *gorm.DB
	Redis  *goredis.Client
	Cipher *crypto.Cipher
	Config *config.Config
	Logger zerolog.Logger
	Audit  ports.AuditTrail
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("healthcare"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Repositories ---
	users := postgres.NewUserRepository(deps.DB)
	patients := postgres.NewPatientRepository(deps.DB)
	appointments := postgres.NewAppointmentRepository(deps.DB)
	records := postgres.NewRecordRepository(deps.DB)
	prescriptions := postgres.NewPrescriptionRepository(deps.DB)
	media := postgres.NewMediaRepository(deps.DB)

	// --- Core ---
	issuer := auth.NewTokenIssuer(deps.Config.JWTSecret, deps.Config.TokenTTL)

	var throttle ports.LoginThrottle
	if deps.Redis != nil {
		throttle = redisinfra.NewLoginThrottle(deps.Redis, deps.Config.Login.MaxAttempts, deps.Config.Login.Window)
	}

	authService := service.NewAuthService(users, patients, issuer, throttle, deps.Logger)
	patientService := service.NewPatientService(patients, deps.Logger)
	appointmentService := service.NewAppointmentService(appointments, patients, users, deps.Logger)
	recordService := service.NewRecordService(records, patients, deps.Cipher, deps.Audit, deps.Logger)
	prescriptionService := service.NewPrescriptionService(prescriptions, patients, deps.Audit, deps.Logger)
	mediaService := service.NewMediaService(media, patients, deps.Cipher, deps.Audit, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	recordHandler := handler.NewRecordHandler(recordService)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionService)
	mediaHandler := handler.NewMediaHandler(mediaService)

	authMW := middleware.Auth(issuer, users)
	clinicianOnly := middleware.RequireRole(domain.RoleClinician, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Patient-scoped routes ---
	p := e.Group("/patients", authMW)

	p.GET("", patientHandler.List, clinicianOnly)
	p.GET("/:id", patientHandler.Get)
	p.PUT("/:id", patientHandler.Update)

	p.POST("/:id/appointments", appointmentHandler.Schedule)
	p.GET("/appointments", appointmentHandler.ListMine)
	p.GET("/:id/appointments", appointmentHandler.ListForPatient)
	p.PATCH("/appointments/:id", appointmentHandler.UpdateStatus, clinicianOnly)

	p.POST("/:id/records", recordHandler.Create, clinicianOnly)
	p.GET("/:id/records", recordHandler.ListForPatient)
	p.GET("/records/:id", recordHandler.Get)

	p.POST("/:id/prescriptions", prescriptionHandler.Issue, clinicianOnly)
	p.GET("/:id/prescriptions", prescriptionHandler.ListForPatient)
	p.GET("/prescriptions/:id", prescriptionHandler.Get)

	p.POST("/:id/media", mediaHandler.Upload)
	p.GET("/:id/media", mediaHandler.ListForPatient)
	p.GET("/media/:id", mediaHandler.Download)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
