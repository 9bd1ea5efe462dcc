package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonkit/salon-manager/internal/audit"
	"github.com/salonkit/salon-manager/internal/config"
	"github.com/salonkit/salon-manager/internal/handlers"
	infraRepo "github.com/salonkit/salon-manager/internal/infra/repository"
	"github.com/salonkit/salon-manager/internal/middleware"
	ucAppointment "github.com/salonkit/salon-manager/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// INFRA
	// ------------------------------
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES
	// ------------------------------
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	changeStatusUC := ucAppointment.NewChangeStatus(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db)
	teamMemberHandler := handlers.NewTeamMemberHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		changeStatusUC,
		listAppointmentsUC,
		deleteAppointmentUC,
	)

	// ------------------------------
	// AUTH (rate-limited, no bearer token)
	// ------------------------------
	limiter := middleware.NewRateLimiter(5, 10)

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit(limiter))
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/identify", authHandler.Identify)
	}

	// ------------------------------
	// PROTECTED API
	// ------------------------------
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)
		api.PUT("/profile/business-info", profileHandler.UpdateBusinessInfo)
		api.PUT("/profile/picture", profileHandler.UploadPicture)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		api.GET("/team-members", teamMemberHandler.List)
		api.POST("/team-members", teamMemberHandler.Create)
		api.PUT("/team-members/:id", teamMemberHandler.Update)
		api.DELETE("/team-members/:id", teamMemberHandler.Delete)

		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/date-range", appointmentHandler.ListByDateRange)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
	}

	// Uploaded profile pictures are served straight from disk.
	r.Static("/uploads", cfg.UploadDir)
}
