package dto

import (
	"time"

	"kardash_backend/internal/models"

	"gorm.io/datatypes"
)

// CreateBotRequest - регистрация скрейпер-бота
type CreateBotRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Platform string                 `json:"platform" binding:"required"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// UpdateBotRequest - обновление бота
type UpdateBotRequest struct {
	Name     *string                `json:"name,omitempty"`
	Platform *string                `json:"platform,omitempty"`
	Status   *string                `json:"status,omitempty" validate:"omitempty,is-bot-status"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// ListBotsQuery - фильтры списка ботов
type ListBotsQuery struct {
	Status   string `form:"status" validate:"omitempty,is-bot-status"`
	Platform string `form:"platform"`
	Skip     int    `form:"skip" validate:"gte=0"`
	Limit    int    `form:"limit" validate:"gte=0,lte=500"`
}

// BotDTO - представление бота
type BotDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Platform    string           `json:"platform"`
	Status      models.BotStatus `json:"status"`
	Config      datatypes.JSON   `json:"config,omitempty"`
	LastActive  *time.Time       `json:"last_active,omitempty"`
	SuccessRate float64          `json:"success_rate"`
	JobsScraped int              `json:"jobs_scraped"`
	JobsApplied int              `json:"jobs_applied"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BotActivityDTO - запись журнала активности
type BotActivityDTO struct {
	ID           string         `json:"id"`
	BotID        string         `json:"bot_id"`
	ActivityType string         `json:"activity_type"`
	Details      datatypes.JSON `json:"details,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewBotDTO собирает DTO из модели
func NewBotDTO(bot *models.Bot) BotDTO {
	return BotDTO{
		ID:          bot.ID,
		Name:        bot.Name,
		Platform:    bot.Platform,
		Status:      bot.Status,
		Config:      bot.Config,
		LastActive:  bot.LastActive,
		SuccessRate: bot.SuccessRate,
		JobsScraped: bot.JobsScraped,
		JobsApplied: bot.JobsApplied,
		CreatedAt:   bot.CreatedAt,
		UpdatedAt:   bot.UpdatedAt,
	}
}

// NewBotActivityDTO собирает DTO записи активности
func NewBotActivityDTO(a *models.BotActivity) BotActivityDTO {
	return BotActivityDTO{
		ID:           a.ID,
		BotID:        a.BotID,
		ActivityType: string(a.ActivityType),
		Details:      a.Details,
		CreatedAt:    a.CreatedAt,
	}
}
