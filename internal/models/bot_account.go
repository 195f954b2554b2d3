package models

import (
	"time"

	"gorm.io/datatypes"
)

// BotAccount - именованное автоматизированное присутствие на внешней
// фриланс-площадке. Не путать с Bot (определение воркера).
type BotAccount struct {
	BaseModel
	Name         string           `gorm:"uniqueIndex;not null" json:"name"`
	Platform     string           `gorm:"not null" json:"platform"`
	Status       BotAccountStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	JobsApplied  int              `gorm:"default:0" json:"jobs_applied"`
	SuccessRate  float64          `gorm:"default:0" json:"success_rate"`
	LastActivity *time.Time       `json:"last_activity"`
	Profile      string           `json:"profile"` // описание/креды профиля
	OwnerID      *string          `gorm:"type:uuid" json:"owner_id"`
	Config       datatypes.JSON   `gorm:"type:jsonb" json:"config"`
}
