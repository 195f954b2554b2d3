package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type BotStatus string
type BotAccountStatus string
type BotActivityType string

const (
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleAdmin      UserRole = "admin"

	JobStatusAvailable  JobStatus = "available"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusDelivered  JobStatus = "delivered"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	BotStatusActive   BotStatus = "active"
	BotStatusInactive BotStatus = "inactive"
	BotStatusError    BotStatus = "error"

	BotAccountStatusActive   BotAccountStatus = "active"
	BotAccountStatusPaused   BotAccountStatus = "paused"
	BotAccountStatusDisabled BotAccountStatus = "disabled"

	BotActivityStart  BotActivityType = "start"
	BotActivityStop   BotActivityType = "stop"
	BotActivityScrape BotActivityType = "scrape"
	BotActivityApply  BotActivityType = "apply"
	BotActivityError  BotActivityType = "error"
)

// IsTerminal сообщает, что из статуса нет переходов
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}
