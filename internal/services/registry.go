package services

import "kardash_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	JobService          JobService
	BotService          BotService
	BotAccountService   BotAccountService
	NotificationService NotificationService
	AutoApplierService  AutoApplierService
	DashboardService    DashboardService
	EmailService        email.Provider
}
