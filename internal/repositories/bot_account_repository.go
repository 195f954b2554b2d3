package repositories

import (
	"errors"
	"time"

	"kardash_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBotAccountNotFound  = errors.New("bot account not found")
	ErrBotAccountNameTaken = errors.New("bot account name already taken")
)

type BotAccountFilter struct {
	Status   models.BotAccountStatus
	Platform string
	OwnerID  string
	Skip     int
	Limit    int
}

type BotAccountOverview struct {
	TotalAccounts    int64   `json:"total_accounts"`
	ActiveAccounts   int64   `json:"active_accounts"`
	PausedAccounts   int64   `json:"paused_accounts"`
	DisabledAccounts int64   `json:"disabled_accounts"`
	TotalApplied     int64   `json:"total_jobs_applied"`
	AvgSuccessRate   float64 `json:"avg_success_rate"`
}

type BotAccountRepository interface {
	FindByID(id string) (*models.BotAccount, error)
	FindByName(name string) (*models.BotAccount, error)
	Create(account *models.BotAccount) error
	UpdateFields(accountID string, fields map[string]interface{}) error
	Delete(accountID string) error
	FindWithFilter(filter BotAccountFilter) ([]models.BotAccount, error)
	FindByOwner(ownerID string) ([]models.BotAccount, error)
	SetStatus(accountID string, status models.BotAccountStatus) error
	GetOverview() (*BotAccountOverview, error)
}

type BotAccountRepositoryImpl struct {
	db *gorm.DB
}

func NewBotAccountRepository(db *gorm.DB) BotAccountRepository {
	return &BotAccountRepositoryImpl{db: db}
}

func (r *BotAccountRepositoryImpl) FindByID(id string) (*models.BotAccount, error) {
	var account models.BotAccount
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBotAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *BotAccountRepositoryImpl) FindByName(name string) (*models.BotAccount, error) {
	var account models.BotAccount
	err := r.db.First(&account, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBotAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *BotAccountRepositoryImpl) Create(account *models.BotAccount) error {
	var existing models.BotAccount
	err := r.db.Where("name = ?", account.Name).First(&existing).Error
	if err == nil {
		return ErrBotAccountNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(account).Error
}

func (r *BotAccountRepositoryImpl) UpdateFields(accountID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.BotAccount{}).Where("id = ?", accountID).Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBotAccountNotFound
	}
	return nil
}

func (r *BotAccountRepositoryImpl) Delete(accountID string) error {
	result := r.db.Where("id = ?", accountID).Delete(&models.BotAccount{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBotAccountNotFound
	}
	return nil
}

func (r *BotAccountRepositoryImpl) FindWithFilter(filter BotAccountFilter) ([]models.BotAccount, error) {
	query := r.db.Model(&models.BotAccount{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	var accounts []models.BotAccount
	err := query.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&accounts).Error
	return accounts, err
}

func (r *BotAccountRepositoryImpl) FindByOwner(ownerID string) ([]models.BotAccount, error) {
	var accounts []models.BotAccount
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&accounts).Error
	return accounts, err
}

func (r *BotAccountRepositoryImpl) SetStatus(accountID string, status models.BotAccountStatus) error {
	return r.UpdateFields(accountID, map[string]interface{}{
		"status":        status,
		"last_activity": time.Now(),
	})
}

func (r *BotAccountRepositoryImpl) GetOverview() (*BotAccountOverview, error) {
	overview := &BotAccountOverview{}

	if err := r.db.Model(&models.BotAccount{}).Count(&overview.TotalAccounts).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status models.BotAccountStatus
		dest   *int64
	}{
		{models.BotAccountStatusActive, &overview.ActiveAccounts},
		{models.BotAccountStatusPaused, &overview.PausedAccounts},
		{models.BotAccountStatusDisabled, &overview.DisabledAccounts},
	}
	for _, c := range statusCounts {
		if err := r.db.Model(&models.BotAccount{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	type sums struct {
		Applied int64
		AvgRate float64
	}
	var s sums
	err := r.db.Model(&models.BotAccount{}).
		Select("COALESCE(SUM(jobs_applied), 0) AS applied, COALESCE(AVG(success_rate), 0) AS avg_rate").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	overview.TotalApplied = s.Applied
	overview.AvgSuccessRate = s.AvgRate

	return overview, nil
}
