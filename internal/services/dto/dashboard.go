package dto

import "time"

// DashboardOverviewResponse - сводка для админской панели
type DashboardOverviewResponse struct {
	TotalJobs       int64   `json:"total_jobs"`
	ActiveJobs      int64   `json:"active_jobs"`
	TotalUsers      int64   `json:"total_users"`
	TotalEarnings   float64 `json:"total_earnings"`
	MonthlyEarnings float64 `json:"monthly_earnings"`
	CommissionRate  float64 `json:"commission_rate"`
}

// RecentActivityDTO - элемент ленты последних событий
type RecentActivityDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// EarningsOverviewResponse - сводка по доходам платформы
type EarningsOverviewResponse struct {
	TotalEarnings   float64 `json:"total_earnings"`
	MonthlyEarnings float64 `json:"monthly_earnings"`
	WeeklyEarnings  float64 `json:"weekly_earnings"`
	DailyEarnings   float64 `json:"daily_earnings"`
	CommissionRate  float64 `json:"commission_rate"`
	PlatformFees    float64 `json:"platform_fees"`
	NetEarnings     float64 `json:"net_earnings"`
}

// EarningsChartResponse - данные для графика доходов
type EarningsChartResponse struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// FreelancerStatsResponse - статистика фрилансера по его работам
type FreelancerStatsResponse struct {
	TotalJobs       int     `json:"total_jobs"`
	CompletedJobs   int     `json:"completed_jobs"`
	ActiveJobs      int     `json:"active_jobs"`
	TotalEarnings   float64 `json:"total_earnings"`
	SuccessRate     float64 `json:"success_rate"`
	AverageJobValue float64 `json:"average_job_value"`
}
