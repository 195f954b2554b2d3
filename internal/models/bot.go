package models

import (
	"time"

	"gorm.io/datatypes"
)

type Bot struct {
	BaseModel
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Platform    string         `json:"platform"`
	Status      BotStatus      `gorm:"type:varchar(20);default:'inactive'" json:"status"`
	Config      datatypes.JSON `gorm:"type:jsonb" json:"config"`
	LastActive  *time.Time     `json:"last_active"`
	SuccessRate float64        `gorm:"default:0" json:"success_rate"`
	JobsScraped int            `gorm:"default:0" json:"jobs_scraped"`
	JobsApplied int            `gorm:"default:0" json:"jobs_applied"`

	Activities []BotActivity `gorm:"foreignKey:BotID" json:"-"`
}

// BotActivity - append-only журнал действий бота. Никогда не обновляется и не удаляется.
type BotActivity struct {
	ID           string          `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	BotID        string          `gorm:"type:uuid;not null;index" json:"bot_id"`
	ActivityType BotActivityType `gorm:"type:varchar(20);not null" json:"activity_type"`
	Details      datatypes.JSON  `gorm:"type:jsonb" json:"details"`
	CreatedAt    time.Time       `gorm:"default:now()" json:"created_at"`
}
