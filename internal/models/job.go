package models

import "time"

type Job struct {
	BaseModel
	Title       string    `gorm:"index" json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Platform    string    `json:"platform"` // "Upwork", "Fiverr", "LinkedIn", ...
	Status      JobStatus `gorm:"type:varchar(20);default:'available';index" json:"status"`

	// ID джобы на исходной платформе; уникален, если задан
	OriginalPlatformJobID *string `gorm:"uniqueIndex" json:"original_platform_job_id"`

	BotAccountID     *string `gorm:"type:uuid" json:"bot_account_id"`
	AssignedToUserID *string `gorm:"type:uuid;index" json:"assigned_to_user_id"`

	CommissionRate   float64    `gorm:"default:0.08" json:"commission_rate"`
	ClientResponse   string     `json:"client_response"`
	DeliveryNotes    string     `json:"delivery_notes"`
	DeliveryFilesURL string     `json:"delivery_files_url"`
	ClientFeedback   string     `json:"client_feedback"`
	FreelancerRating *float64   `json:"freelancer_rating"`
	CompletedAt      *time.Time `json:"completed_at"`
	Deadline         *time.Time `json:"deadline"`
	Type             string     `json:"type"` // "fixed", "hourly", "recurring"
	Tags             string     `json:"tags"` // comma-separated
	Urgency          string     `gorm:"default:'medium'" json:"urgency"`
	ClientRating     *float64   `json:"client_rating"`
	EstimatedHours   string     `json:"estimated_hours"`
	IsUrgent         bool       `gorm:"default:false" json:"is_urgent"`
	UserID           string     `gorm:"type:uuid;index" json:"user_id"` // creator (admin or scraping bot owner)

	// Relations
	Applications   []JobApplication `gorm:"foreignKey:JobID" json:"-"`
	AssignedToUser *User            `gorm:"foreignKey:AssignedToUserID" json:"-"`
}

// EffectiveCommissionRate возвращает ставку комиссии джобы,
// либо платформенный дефолт 0.08, если она не задана.
func (j *Job) EffectiveCommissionRate() float64 {
	if j.CommissionRate > 0 {
		return j.CommissionRate
	}
	return 0.08
}

type JobApplication struct {
	ID        string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	UserID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"user_id"`
	Proposal  string            `json:"proposal"`
	BidAmount float64           `json:"bid_amount"`
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt time.Time         `gorm:"default:now()" json:"created_at"`

	Job *Job `gorm:"foreignKey:JobID" json:"-"`
}
