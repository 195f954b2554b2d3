package app

import (
	"errors"
	"fmt"

	"kardash_backend/database"
	"kardash_backend/internal/auth"
	"kardash_backend/internal/config"
	"kardash_backend/internal/email"
	"kardash_backend/internal/handlers"
	"kardash_backend/internal/logger"
	"kardash_backend/internal/middleware"
	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/routes"
	"kardash_backend/internal/services"
	"kardash_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" && cfg.Email.SMTPUsername != "" {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured, using mock email provider")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	botRepo := repositories.NewBotRepository(gormDB)
	accountRepo := repositories.NewBotAccountRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	dashboardRepo := repositories.NewDashboardRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		UserService:         services.NewUserService(userRepo, jobRepo),
		JobService:          services.NewJobService(jobRepo, userRepo, emailService),
		BotService:          services.NewBotService(botRepo),
		BotAccountService:   services.NewBotAccountService(accountRepo),
		NotificationService: services.NewNotificationService(notificationRepo, userRepo),
		AutoApplierService:  services.NewAutoApplierService(botRepo, jobRepo),
		DashboardService:    services.NewDashboardService(dashboardRepo, jobRepo, userRepo, botRepo),
		EmailService:        emailService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.JobService),
		BotHandler:          handlers.NewBotHandler(baseHandler, container.BotService),
		BotAccountHandler:   handlers.NewBotAccountHandler(baseHandler, container.BotAccountService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		AutoApplierHandler:  handlers.NewAutoApplierHandler(baseHandler, container.AutoApplierService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, container.DashboardService),
		PayoutHandler:       handlers.NewPayoutHandler(baseHandler),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Platform.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого администратора при старте,
// если он задан в конфигурации и еще не существует.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)

		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			Name:         "Administrator",
			PasswordHash: hashedPassword,
			Role:         models.UserRoleAdmin,
			IsActive:     true,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("First admin user created", "email", adminEmail)
		return nil
	})
}
