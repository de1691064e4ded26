package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vibrantyoga/api/config"
	"github.com/vibrantyoga/api/internal/handlers"
	"github.com/vibrantyoga/api/internal/middleware"
	"github.com/vibrantyoga/api/internal/notifier"
	"github.com/vibrantyoga/api/internal/repository"
	"github.com/vibrantyoga/api/internal/service"
	"github.com/vibrantyoga/api/internal/token"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	r := gin.Default()

	setupRoutes(r, db, cfg)

	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	log := logrus.StandardLogger()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	mailer := notifier.NewMailer(settingsRepo, cfg.SMTPDefaults, log)

	authService := service.NewAuthService(userRepo, tokens)
	eventService := service.NewEventService(eventRepo)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, userRepo, mailer, log)
	dashboardService := service.NewDashboardService(userRepo, eventRepo, bookingRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(dashboardService, settingsRepo, cfg.SMTPDefaults)

	auth := middleware.NewAuthMiddleware(tokens, userRepo)

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", eventHandler.Get)
	}

	authed := r.Group("/api")
	authed.Use(auth.Authenticate())
	{
		authed.GET("/users/me", userHandler.Me)

		authed.POST("/bookings", bookingHandler.Create)
		authed.GET("/bookings", bookingHandler.List)
		authed.POST("/bookings/:id/payment-proof", bookingHandler.UploadPaymentProof)
	}

	admin := r.Group("/api")
	admin.Use(auth.Authenticate(), auth.RequireAdmin())
	{
		admin.GET("/users", userHandler.List)
		admin.PUT("/users/:id/role", userHandler.UpdateRole)

		admin.POST("/events", eventHandler.Create)
		admin.POST("/events/:id/qr-code", eventHandler.UploadQRCode)

		admin.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)

		admin.GET("/admin/dashboard", adminHandler.Dashboard)
		admin.GET("/admin/smtp-settings", adminHandler.GetSMTPSettings)
		admin.POST("/admin/smtp-settings", adminHandler.UpdateSMTPSettings)
	}
}
