package dto

import (
	"time"

	"kardash_backend/internal/models"

	"gorm.io/datatypes"
)

// CreateBotAccountRequest - регистрация аккаунта на внешней платформе
type CreateBotAccountRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Platform string                 `json:"platform" binding:"required"`
	Profile  string                 `json:"profile,omitempty"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// UpdateBotAccountRequest - обновление аккаунта
type UpdateBotAccountRequest struct {
	Name     *string                `json:"name,omitempty"`
	Platform *string                `json:"platform,omitempty"`
	Status   *string                `json:"status,omitempty" validate:"omitempty,is-bot-account-status"`
	Profile  *string                `json:"profile,omitempty"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// ListBotAccountsQuery - фильтры списка аккаунтов
type ListBotAccountsQuery struct {
	Status   string `form:"status" validate:"omitempty,is-bot-account-status"`
	Platform string `form:"platform"`
	Skip     int    `form:"skip" validate:"gte=0"`
	Limit    int    `form:"limit" validate:"gte=0,lte=500"`
}

// BotAccountDTO - представление аккаунта
type BotAccountDTO struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Platform     string                  `json:"platform"`
	Status       models.BotAccountStatus `json:"status"`
	JobsApplied  int                     `json:"jobs_applied"`
	SuccessRate  float64                 `json:"success_rate"`
	LastActivity *time.Time              `json:"last_activity,omitempty"`
	Profile      string                  `json:"profile,omitempty"`
	OwnerID      *string                 `json:"owner_id,omitempty"`
	Config       datatypes.JSON          `json:"config,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// NewBotAccountDTO собирает DTO из модели
func NewBotAccountDTO(account *models.BotAccount) BotAccountDTO {
	return BotAccountDTO{
		ID:           account.ID,
		Name:         account.Name,
		Platform:     account.Platform,
		Status:       account.Status,
		JobsApplied:  account.JobsApplied,
		SuccessRate:  account.SuccessRate,
		LastActivity: account.LastActivity,
		Profile:      account.Profile,
		OwnerID:      account.OwnerID,
		Config:       account.Config,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
