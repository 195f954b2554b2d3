package dto

import (
	"time"

	"kardash_backend/internal/models"
)

// CreateJobRequest - создание работы
type CreateJobRequest struct {
	Title                 string     `json:"title" binding:"required"`
	Description           string     `json:"description" binding:"required"`
	Budget                float64    `json:"budget" binding:"required,gt=0"`
	Platform              string     `json:"platform" binding:"required"`
	Type                  string     `json:"type,omitempty"`
	Tags                  string     `json:"tags,omitempty"`
	Urgency               string     `json:"urgency,omitempty" validate:"omitempty,is-urgency"`
	Deadline              *time.Time `json:"deadline,omitempty"`
	CommissionRate        *float64   `json:"commission_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
	OriginalPlatformJobID *string    `json:"original_platform_job_id,omitempty"`
	BotAccountID          *string    `json:"bot_account_id,omitempty"`
	EstimatedHours        string     `json:"estimated_hours,omitempty"`
	ClientRating          *float64   `json:"client_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	IsUrgent              bool       `json:"is_urgent,omitempty"`
}

// UpdateJobRequest - частичное обновление работы
type UpdateJobRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Budget         *float64   `json:"budget,omitempty" validate:"omitempty,gt=0"`
	Platform       *string    `json:"platform,omitempty"`
	Type           *string    `json:"type,omitempty"`
	Tags           *string    `json:"tags,omitempty"`
	Urgency        *string    `json:"urgency,omitempty" validate:"omitempty,is-urgency"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	CommissionRate *float64   `json:"commission_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
	IsUrgent       *bool      `json:"is_urgent,omitempty"`
}

// ListJobsQuery - фильтры списка работ
type ListJobsQuery struct {
	Status   string `form:"status" validate:"omitempty,is-job-status"`
	Platform string `form:"platform"`
	Search   string `form:"search"`
	Type     string `form:"type"`
	SortBy   string `form:"sort_by" validate:"omitempty,oneof=created_at budget deadline"`
	Skip     int    `form:"skip" validate:"gte=0"`
	Limit    int    `form:"limit" validate:"gte=0,lte=500"`
}

// ListAvailableJobsQuery - публичная витрина открытых работ
type ListAvailableJobsQuery struct {
	Search     string `form:"search"`
	SortBy     string `form:"sort_by" validate:"omitempty,oneof=created_at budget-high budget-low"`
	FilterType string `form:"filter_type" validate:"omitempty,oneof=urgent"`
	Skip       int    `form:"skip" validate:"gte=0"`
	Limit      int    `form:"limit" validate:"gte=0,lte=500"`
}

// ApplyJobRequest - отклик на работу
type ApplyJobRequest struct {
	Proposal  string   `json:"proposal" binding:"required"`
	BidAmount *float64 `json:"bid_amount,omitempty" validate:"omitempty,gt=0"`
}

// AssignJobRequest - назначение исполнителя по заявке
type AssignJobRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
}

// DeliverJobRequest - сдача результата
type DeliverJobRequest struct {
	DeliveryNotes    string `json:"delivery_notes,omitempty"`
	DeliveryFilesURL string `json:"delivery_files_url,omitempty"`
}

// CompleteJobRequest - приемка работы клиентом
type CompleteJobRequest struct {
	ClientFeedback   string   `json:"client_feedback,omitempty"`
	FreelancerRating *float64 `json:"freelancer_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// CompleteJobResponse - итог завершения работы
type CompleteJobResponse struct {
	Job     JobDTO  `json:"job"`
	Payment float64 `json:"payment"`
	Message string  `json:"message"`
}

// JobDTO - представление работы в ответах API
type JobDTO struct {
	ID                    string            `json:"id"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	Budget                float64           `json:"budget"`
	Platform              string            `json:"platform"`
	Status                models.JobStatus  `json:"status"`
	Type                  string            `json:"type,omitempty"`
	Tags                  string            `json:"tags,omitempty"`
	Urgency               string            `json:"urgency"`
	CommissionRate        float64           `json:"commission_rate"`
	OriginalPlatformJobID *string           `json:"original_platform_job_id,omitempty"`
	BotAccountID          *string           `json:"bot_account_id,omitempty"`
	UserID                string            `json:"user_id"`
	AssignedToUserID      *string           `json:"assigned_to_user_id,omitempty"`
	ClientResponse        string            `json:"client_response,omitempty"`
	DeliveryNotes         string            `json:"delivery_notes,omitempty"`
	DeliveryFilesURL      string            `json:"delivery_files_url,omitempty"`
	ClientFeedback        string            `json:"client_feedback,omitempty"`
	FreelancerRating      *float64          `json:"freelancer_rating,omitempty"`
	ClientRating          *float64          `json:"client_rating,omitempty"`
	EstimatedHours        string            `json:"estimated_hours,omitempty"`
	IsUrgent              bool              `json:"is_urgent"`
	Deadline              *time.Time        `json:"deadline,omitempty"`
	CompletedAt           *time.Time        `json:"completed_at,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
	Applications          []ApplicationDTO  `json:"applications,omitempty"`
}

// ApplicationDTO - представление заявки
type ApplicationDTO struct {
	ID        string                   `json:"id"`
	JobID     string                   `json:"job_id"`
	UserID    string                   `json:"user_id"`
	Proposal  string                   `json:"proposal"`
	BidAmount float64                  `json:"bid_amount"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
	Job       *JobDTO                  `json:"job,omitempty"`
}

// NewJobDTO собирает DTO из модели
func NewJobDTO(job *models.Job) JobDTO {
	d := JobDTO{
		ID:                    job.ID,
		Title:                 job.Title,
		Description:           job.Description,
		Budget:                job.Budget,
		Platform:              job.Platform,
		Status:                job.Status,
		Type:                  job.Type,
		Tags:                  job.Tags,
		Urgency:               job.Urgency,
		CommissionRate:        job.EffectiveCommissionRate(),
		OriginalPlatformJobID: job.OriginalPlatformJobID,
		BotAccountID:          job.BotAccountID,
		UserID:                job.UserID,
		AssignedToUserID:      job.AssignedToUserID,
		ClientResponse:        job.ClientResponse,
		DeliveryNotes:         job.DeliveryNotes,
		DeliveryFilesURL:      job.DeliveryFilesURL,
		ClientFeedback:        job.ClientFeedback,
		FreelancerRating:      job.FreelancerRating,
		ClientRating:          job.ClientRating,
		EstimatedHours:        job.EstimatedHours,
		IsUrgent:              job.IsUrgent,
		Deadline:              job.Deadline,
		CompletedAt:           job.CompletedAt,
		CreatedAt:             job.CreatedAt,
		UpdatedAt:             job.UpdatedAt,
	}

	for i := range job.Applications {
		d.Applications = append(d.Applications, NewApplicationDTO(&job.Applications[i]))
	}
	return d
}

// NewApplicationDTO собирает DTO заявки
func NewApplicationDTO(app *models.JobApplication) ApplicationDTO {
	d := ApplicationDTO{
		ID:        app.ID,
		JobID:     app.JobID,
		UserID:    app.UserID,
		Proposal:  app.Proposal,
		BidAmount: app.BidAmount,
		Status:    app.Status,
		CreatedAt: app.CreatedAt,
	}
	if app.Job != nil {
		job := NewJobDTO(app.Job)
		job.Applications = nil
		d.Job = &job
	}
	return d
}
