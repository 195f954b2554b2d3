package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	JobHandler          *JobHandler
	BotHandler          *BotHandler
	BotAccountHandler   *BotAccountHandler
	NotificationHandler *NotificationHandler
	AutoApplierHandler  *AutoApplierHandler
	DashboardHandler    *DashboardHandler
	PayoutHandler       *PayoutHandler
	HealthHandler       *HealthHandler
}
