package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/datastate"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucTeam "github.com/BruksfildServices01/salon-scheduler/internal/usecase/team"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	readCache := cache.New(rdb)
	tracker := datastate.New(rdb, cfg.DemoMode)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — SCHEDULING
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		schedulingRepo,
		auditDispatcher,
		tracker,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		schedulingRepo,
		auditDispatcher,
		tracker,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		schedulingRepo,
		auditDispatcher,
		tracker,
	)

	availableSlotsUC := ucAppointment.NewGetAvailableSlots(
		schedulingRepo,
		readCache,
	)

	computeTotalsUC := ucAppointment.NewComputeTotals(schedulingRepo)

	deactivateTeamMemberUC := ucTeam.NewDeactivateTeamMember(
		schedulingRepo,
		auditDispatcher,
		tracker,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db, tracker)
	serviceHandler := handlers.NewServiceHandler(db, tracker)
	teamHandler := handlers.NewTeamHandler(db, tracker, deactivateTeamMemberUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		readCache,
		tracker,
		auditDispatcher,
		createAppointmentUC,
		updateAppointmentUC,
		updateStatusUC,
		availableSlotsUC,
		computeTotalsUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/search", clientHandler.Search)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/by-type", serviceHandler.ByType)
			secured.GET("/services/types", serviceHandler.Types)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// TEAM
			// ------------------------------
			secured.GET("/team", teamHandler.List)
			secured.GET("/team/available-for-service", teamHandler.AvailableForService)
			secured.GET("/team/:id", teamHandler.Get)
			secured.POST("/team", teamHandler.Create)
			secured.PUT("/team/:id", teamHandler.Update)
			secured.DELETE("/team/:id", teamHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/today", appointmentHandler.Today)
			secured.GET("/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.GET("/appointments/:id/totals", appointmentHandler.Totals)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		}
	}
}
