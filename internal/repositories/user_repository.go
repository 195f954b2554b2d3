package repositories

import (
	"errors"
	"time"

	"kardash_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserFilter struct {
	Role     models.UserRole
	IsActive *bool
	Skip     int
	Limit    int
}

type UserOverview struct {
	TotalUsers        int64 `json:"total_users"`
	ActiveUsers       int64 `json:"active_users"`
	Freelancers       int64 `json:"freelancers"`
	Admins            int64 `json:"admins"`
	NewUsersThisMonth int64 `json:"new_users_this_month"`
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateFields(userID string, fields map[string]interface{}) error
	SetActive(userID string, active bool) error
	Delete(userID string) error
	FindWithFilter(filter UserFilter) ([]models.User, error)
	GetOverview() (*UserOverview, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Check if user already exists
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"is_active":   user.IsActive,
		"skill_tags":  user.SkillTags,
		"hourly_rate": user.HourlyRate,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateFields(userID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetActive(userID string, active bool) error {
	return r.UpdateFields(userID, map[string]interface{}{"is_active": active})
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	// Applications and notifications go with the user
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindWithFilter(filter UserFilter) ([]models.User, error) {
	query := r.db.Model(&models.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	var users []models.User
	err := query.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) GetOverview() (*UserOverview, error) {
	overview := &UserOverview{}

	if err := r.db.Model(&models.User{}).Count(&overview.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("is_active = ?", true).Count(&overview.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("role = ?", models.UserRoleFreelancer).Count(&overview.Freelancers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&overview.Admins).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if err := r.db.Model(&models.User{}).Where("created_at >= ?", firstOfMonth).Count(&overview.NewUsersThisMonth).Error; err != nil {
		return nil, err
	}

	return overview, nil
}
