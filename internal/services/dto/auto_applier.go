package dto

import "time"

// AutoApplyConfig - настройки авто-откликов фрилансера.
// Хранится в JSONB конфиге его персонального бота.
type AutoApplyConfig struct {
	Keywords               []string `json:"keywords"`
	MinBudget              float64  `json:"min_budget" validate:"gte=0"`
	MaxBudget              float64  `json:"max_budget" validate:"gte=0"`
	Platforms              []string `json:"platforms"`
	AutoApply              bool     `json:"auto_apply"`
	CustomProposalTemplate string   `json:"custom_proposal_template,omitempty"`
}

// DefaultAutoApplyConfig возвращает стартовые настройки
func DefaultAutoApplyConfig() AutoApplyConfig {
	return AutoApplyConfig{
		Keywords:               []string{"React", "Python", "Web Development"},
		MinBudget:              100.0,
		MaxBudget:              5000.0,
		Platforms:              []string{"Upwork", "Fiverr", "Freelancer"},
		AutoApply:              true,
		CustomProposalTemplate: "I'm interested in this project and have relevant experience...",
	}
}

// AutoApplierStatusResponse - текущее состояние авто-откликов
type AutoApplierStatusResponse struct {
	Active      bool       `json:"active"`
	LastActive  *time.Time `json:"last_active"`
	JobsScraped int        `json:"jobs_scraped"`
	JobsApplied int        `json:"jobs_applied"`
	SuccessRate float64    `json:"success_rate"`
}

// AutoApplicationDTO - авто-отклик вместе с данными работы
type AutoApplicationDTO struct {
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	Platform  string    `json:"platform"`
	Budget    float64   `json:"budget"`
	Applied   bool      `json:"applied"`
	Proposal  string    `json:"proposal"`
	BidAmount float64   `json:"bid_amount"`
	Timestamp time.Time `json:"timestamp"`
}

// AutoApplierStatsResponse - статистика авто-откликов
type AutoApplierStatsResponse struct {
	TotalJobsFound         int        `json:"total_jobs_found"`
	JobsApplied            int        `json:"jobs_applied"`
	SuccessRate            float64    `json:"success_rate"`
	TotalEarningsPotential float64    `json:"total_earnings_potential"`
	LastActivity           *time.Time `json:"last_activity"`
}

// ManualApplyResponse - результат ручного авто-отклика
type ManualApplyResponse struct {
	Message   string  `json:"message"`
	JobID     string  `json:"job_id"`
	Proposal  string  `json:"proposal"`
	BidAmount float64 `json:"bid_amount"`
}

// JobSuggestionDTO - подходящая работа для авто-отклика
type JobSuggestionDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Platform    string  `json:"platform"`
	IsUrgent    bool    `json:"is_urgent"`
	MatchScore  float64 `json:"match_score"`
}
