package repositories

import (
	"errors"
	"time"

	"kardash_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBotNotFound  = errors.New("bot not found")
	ErrBotNameTaken = errors.New("bot name already taken")
)

type BotFilter struct {
	Status   models.BotStatus
	Platform string
	Skip     int
	Limit    int
}

type BotOverview struct {
	TotalBots      int64   `json:"total_bots"`
	ActiveBots     int64   `json:"active_bots"`
	TotalScraped   int64   `json:"total_jobs_scraped"`
	TotalApplied   int64   `json:"total_jobs_applied"`
	AvgSuccessRate float64 `json:"avg_success_rate"`
	BotsWithErrors int64   `json:"bots_with_errors"`
}

type BotRepository interface {
	FindByID(id string) (*models.Bot, error)
	FindByName(name string) (*models.Bot, error)
	Create(bot *models.Bot) error
	UpdateFields(botID string, fields map[string]interface{}) error
	Delete(botID string) error
	FindWithFilter(filter BotFilter) ([]models.Bot, error)
	SetStatus(botID string, status models.BotStatus) error
	IncrementCounters(botID string, scraped, applied int) error
	GetOverview() (*BotOverview, error)

	CreateActivity(activity *models.BotActivity) error
	FindActivities(botID string, limit int) ([]models.BotActivity, error)
}

type BotRepositoryImpl struct {
	db *gorm.DB
}

func NewBotRepository(db *gorm.DB) BotRepository {
	return &BotRepositoryImpl{db: db}
}

func (r *BotRepositoryImpl) FindByID(id string) (*models.Bot, error) {
	var bot models.Bot
	err := r.db.First(&bot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBotNotFound
		}
		return nil, err
	}
	return &bot, nil
}

func (r *BotRepositoryImpl) FindByName(name string) (*models.Bot, error) {
	var bot models.Bot
	err := r.db.First(&bot, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBotNotFound
		}
		return nil, err
	}
	return &bot, nil
}

func (r *BotRepositoryImpl) Create(bot *models.Bot) error {
	var existing models.Bot
	err := r.db.Where("name = ?", bot.Name).First(&existing).Error
	if err == nil {
		return ErrBotNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(bot).Error
}

func (r *BotRepositoryImpl) UpdateFields(botID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Bot{}).Where("id = ?", botID).Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBotNotFound
	}
	return nil
}

func (r *BotRepositoryImpl) Delete(botID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bot_id = ?", botID).Delete(&models.BotActivity{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", botID).Delete(&models.Bot{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBotNotFound
		}
		return nil
	})
}

func (r *BotRepositoryImpl) FindWithFilter(filter BotFilter) ([]models.Bot, error) {
	query := r.db.Model(&models.Bot{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	var bots []models.Bot
	err := query.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&bots).Error
	return bots, err
}

func (r *BotRepositoryImpl) SetStatus(botID string, status models.BotStatus) error {
	fields := map[string]interface{}{"status": status}
	if status == models.BotStatusActive {
		fields["last_active"] = time.Now()
	}
	return r.UpdateFields(botID, fields)
}

func (r *BotRepositoryImpl) IncrementCounters(botID string, scraped, applied int) error {
	return r.UpdateFields(botID, map[string]interface{}{
		"jobs_scraped": gorm.Expr("jobs_scraped + ?", scraped),
		"jobs_applied": gorm.Expr("jobs_applied + ?", applied),
		"last_active":  time.Now(),
	})
}

func (r *BotRepositoryImpl) GetOverview() (*BotOverview, error) {
	overview := &BotOverview{}

	if err := r.db.Model(&models.Bot{}).Count(&overview.TotalBots).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Bot{}).Where("status = ?", models.BotStatusActive).Count(&overview.ActiveBots).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Bot{}).Where("status = ?", models.BotStatusError).Count(&overview.BotsWithErrors).Error; err != nil {
		return nil, err
	}

	type sums struct {
		Scraped int64
		Applied int64
		AvgRate float64
	}
	var s sums
	err := r.db.Model(&models.Bot{}).
		Select("COALESCE(SUM(jobs_scraped), 0) AS scraped, COALESCE(SUM(jobs_applied), 0) AS applied, COALESCE(AVG(success_rate), 0) AS avg_rate").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	overview.TotalScraped = s.Scraped
	overview.TotalApplied = s.Applied
	overview.AvgSuccessRate = s.AvgRate

	return overview, nil
}

func (r *BotRepositoryImpl) CreateActivity(activity *models.BotActivity) error {
	return r.db.Create(activity).Error
}

func (r *BotRepositoryImpl) FindActivities(botID string, limit int) ([]models.BotActivity, error) {
	if limit <= 0 {
		limit = 50
	}

	var activities []models.BotActivity
	err := r.db.
		Where("bot_id = ?", botID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
