package repositories

import (
	"errors"
	"time"

	"kardash_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("job application not found")
	ErrAlreadyApplied      = errors.New("application already exists")
	ErrJobStateChanged     = errors.New("job state changed concurrently")
)

type JobFilter struct {
	Status     models.JobStatus
	Platform   string
	Search     string
	JobType    string
	UrgentOnly bool
	SortBy     string
	Skip       int
	Limit      int
}

type JobOverview struct {
	TotalJobs     int64 `json:"total_jobs"`
	AvailableJobs int64 `json:"available_jobs"`
	InProgress    int64 `json:"in_progress_jobs"`
	Delivered     int64 `json:"delivered_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	CancelledJobs int64 `json:"cancelled_jobs"`
	UrgentJobs    int64 `json:"urgent_jobs"`
}

type JobRepository interface {
	FindByID(id string) (*models.Job, error)
	FindByIDWithApplications(id string) (*models.Job, error)
	Create(job *models.Job) error
	UpdateFields(jobID string, fields map[string]interface{}) error
	Delete(jobID string) error
	FindWithFilter(filter JobFilter) ([]models.Job, error)
	FindByUser(userID string) ([]models.Job, error)
	FindSuggestions(minBudget, maxBudget float64, limit int) ([]models.Job, error)
	GetOverview() (*JobOverview, error)
	SumCompletedPayments() (float64, error)

	CreateApplication(app *models.JobApplication) error
	FindApplication(jobID, userID string) (*models.JobApplication, error)
	FindApplicationByID(id string) (*models.JobApplication, error)
	FindUserApplications(userID string, skip, limit int) ([]models.JobApplication, error)
	CountUserApplications(userID string) (int64, error)
	CountUserApplicationsByStatus(userID string, status models.ApplicationStatus) (int64, error)

	Assign(jobID, applicationID, freelancerID string) error
	Complete(job *models.Job, payment float64, notification *models.Notification) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDWithApplications(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Applications").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) UpdateFields(jobID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Updates(fields)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", jobID).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.Job, error) {
	query := r.db.Model(&models.Job{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.JobType != "" {
		query = query.Where("type = ?", filter.JobType)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.UrgentOnly {
		query = query.Where("is_urgent = ?", true)
	}

	switch filter.SortBy {
	case "budget", "budget-high":
		query = query.Order("budget DESC")
	case "budget-low":
		query = query.Order("budget ASC")
	case "deadline":
		query = query.Order("deadline ASC NULLS LAST")
	default:
		query = query.Order("created_at DESC")
	}

	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	var jobs []models.Job
	err := query.Offset(filter.Skip).Limit(filter.Limit).Find(&jobs).Error
	return jobs, err
}

// FindByUser возвращает работы, созданные пользователем или назначенные на него.
func (r *JobRepositoryImpl) FindByUser(userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("user_id = ? OR assigned_to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindSuggestions(minBudget, maxBudget float64, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = 10
	}

	var jobs []models.Job
	err := r.db.
		Where("status = ?", models.JobStatusAvailable).
		Where("budget >= ? AND budget <= ?", minBudget, maxBudget).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) GetOverview() (*JobOverview, error) {
	overview := &JobOverview{}

	counts := []struct {
		status models.JobStatus
		dest   *int64
	}{
		{models.JobStatusAvailable, &overview.AvailableJobs},
		{models.JobStatusInProgress, &overview.InProgress},
		{models.JobStatusDelivered, &overview.Delivered},
		{models.JobStatusCompleted, &overview.CompletedJobs},
		{models.JobStatusCancelled, &overview.CancelledJobs},
	}

	if err := r.db.Model(&models.Job{}).Count(&overview.TotalJobs).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		if err := r.db.Model(&models.Job{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	if err := r.db.Model(&models.Job{}).Where("is_urgent = ?", true).Count(&overview.UrgentJobs).Error; err != nil {
		return nil, err
	}

	return overview, nil
}

// SumCompletedPayments считает сумму выплат по завершенным работам
// (бюджет минус комиссия платформы).
func (r *JobRepositoryImpl) SumCompletedPayments() (float64, error) {
	var total float64
	err := r.db.Model(&models.Job{}).
		Where("status = ?", models.JobStatusCompleted).
		Select("COALESCE(SUM(budget * (1 - commission_rate)), 0)").
		Scan(&total).Error
	return total, err
}

func (r *JobRepositoryImpl) CreateApplication(app *models.JobApplication) error {
	var existing models.JobApplication
	err := r.db.Where("job_id = ? AND user_id = ?", app.JobID, app.UserID).First(&existing).Error
	if err == nil {
		return ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(app).Error
}

func (r *JobRepositoryImpl) FindApplication(jobID, userID string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Where("job_id = ? AND user_id = ?", jobID, userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *JobRepositoryImpl) FindApplicationByID(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *JobRepositoryImpl) FindUserApplications(userID string, skip, limit int) ([]models.JobApplication, error) {
	if limit <= 0 {
		limit = 100
	}

	var apps []models.JobApplication
	err := r.db.
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (r *JobRepositoryImpl) CountUserApplications(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountUserApplicationsByStatus(userID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

// Assign принимает одну заявку и атомарно переводит работу в in_progress.
// Остальные pending-заявки отклоняются в той же транзакции.
func (r *JobRepositoryImpl) Assign(jobID, applicationID, freelancerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		accepted := tx.Model(&models.JobApplication{}).
			Where("id = ? AND job_id = ?", applicationID, jobID).
			Update("status", models.ApplicationStatusAccepted)
		if accepted.Error != nil {
			return accepted.Error
		}
		if accepted.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		if err := tx.Model(&models.JobApplication{}).
			Where("job_id = ? AND id <> ? AND status = ?", jobID, applicationID, models.ApplicationStatusPending).
			Update("status", models.ApplicationStatusRejected).Error; err != nil {
			return err
		}

		// Guard по статусу защищает от параллельного назначения
		result := tx.Model(&models.Job{}).
			Where("id = ? AND status = ?", jobID, models.JobStatusAvailable).
			Updates(map[string]interface{}{
				"status":              models.JobStatusInProgress,
				"assigned_to_user_id": freelancerID,
				"updated_at":          time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobStateChanged
		}
		return nil
	})
}

// Complete закрывает работу, начисляет фрилансеру выплату и создает
// уведомление. Все в одной транзакции: либо все записи, либо ни одной.
func (r *JobRepositoryImpl) Complete(job *models.Job, payment float64, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.Job{}).
			Where("id = ? AND status = ?", job.ID, models.JobStatusDelivered).
			Updates(map[string]interface{}{
				"status":       models.JobStatusCompleted,
				"completed_at": now,
				"updated_at":   now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobStateChanged
		}

		if job.AssignedToUserID != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ?", *job.AssignedToUserID).
				Updates(map[string]interface{}{
					"total_earnings": gorm.Expr("total_earnings + ?", payment),
					"completed_jobs": gorm.Expr("completed_jobs + 1"),
					"updated_at":     now,
				}).Error; err != nil {
				return err
			}
		}

		if notification != nil {
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
