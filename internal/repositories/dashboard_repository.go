package repositories

import (
	"errors"
	"time"

	"kardash_backend/internal/models"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetOrCreateStats() (*models.DashboardStats, error)
	UpdateStats(fields map[string]interface{}) error
}

type DashboardRepositoryImpl struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &DashboardRepositoryImpl{db: db}
}

// GetOrCreateStats возвращает единственную строку статистики,
// создавая ее с дефолтами при первом обращении.
func (r *DashboardRepositoryImpl) GetOrCreateStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := r.db.First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = models.DashboardStats{
		CommissionRate: 0.15,
		UpdatedAt:      time.Now(),
	}
	if err := r.db.Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *DashboardRepositoryImpl) UpdateStats(fields map[string]interface{}) error {
	stats, err := r.GetOrCreateStats()
	if err != nil {
		return err
	}

	fields["updated_at"] = time.Now()
	return r.db.Model(stats).Updates(fields).Error
}
