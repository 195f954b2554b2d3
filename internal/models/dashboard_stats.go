package models

import "time"

// DashboardStats - синглтон-строка с платформенной конфигурацией и
// кешированными агрегатами. Если строки нет - создается с дефолтами
// (lazy-init в репозитории), второй строки быть не должно.
type DashboardStats struct {
	ID              string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TotalJobs       int64     `gorm:"default:0" json:"total_jobs"`
	ActiveJobs      int64     `gorm:"default:0" json:"active_jobs"`
	TotalUsers      int64     `gorm:"default:0" json:"total_users"`
	TotalEarnings   float64   `gorm:"default:0" json:"total_earnings"`
	MonthlyEarnings float64   `gorm:"default:0" json:"monthly_earnings"`
	CommissionRate  float64   `gorm:"default:0.15" json:"commission_rate"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
