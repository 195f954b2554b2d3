package services

import (
	"fmt"

	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/services/dto"
	"kardash_backend/pkg/apperrors"
)

type DashboardService interface {
	Overview() (*dto.DashboardOverviewResponse, error)
	JobStats() (*repositories.JobOverview, error)
	UserStats() (*repositories.UserOverview, error)
	BotStats() (*repositories.BotOverview, error)
	RecentActivity(limit int) ([]dto.RecentActivityDTO, error)
	EarningsOverview() (*dto.EarningsOverviewResponse, error)
	EarningsChart(period string) (*dto.EarningsChartResponse, error)
	FreelancerStats(userID string) (*dto.FreelancerStatsResponse, error)
}

type DashboardServiceImpl struct {
	dashboardRepo repositories.DashboardRepository
	jobRepo       repositories.JobRepository
	userRepo      repositories.UserRepository
	botRepo       repositories.BotRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	botRepo repositories.BotRepository,
) DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		botRepo:       botRepo,
	}
}

// Overview - живые счетчики плюс ставка комиссии из singleton-строки.
// Показатели earnings пока захардкожены, реальный расчет появится
// вместе с платежным контуром.
func (s *DashboardServiceImpl) Overview() (*dto.DashboardOverviewResponse, error) {
	stats, err := s.dashboardRepo.GetOrCreateStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	users, err := s.userRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardOverviewResponse{
		TotalJobs:       jobs.TotalJobs,
		ActiveJobs:      jobs.AvailableJobs,
		TotalUsers:      users.TotalUsers,
		TotalEarnings:   15000.0,
		MonthlyEarnings: 2500.0,
		CommissionRate:  stats.CommissionRate,
	}, nil
}

func (s *DashboardServiceImpl) JobStats() (*repositories.JobOverview, error) {
	overview, err := s.jobRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return overview, nil
}

func (s *DashboardServiceImpl) UserStats() (*repositories.UserOverview, error) {
	overview, err := s.userRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return overview, nil
}

func (s *DashboardServiceImpl) BotStats() (*repositories.BotOverview, error) {
	overview, err := s.botRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return overview, nil
}

// RecentActivity строит ленту из последних созданных работ.
func (s *DashboardServiceImpl) RecentActivity(limit int) ([]dto.RecentActivityDTO, error) {
	if limit <= 0 {
		limit = 10
	}

	jobs, err := s.jobRepo.FindWithFilter(repositories.JobFilter{Limit: limit})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activities := make([]dto.RecentActivityDTO, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		activities = append(activities, dto.RecentActivityDTO{
			ID:          job.ID,
			Type:        "job_created",
			Title:       fmt.Sprintf("New job: %s", job.Title),
			Description: fmt.Sprintf("Job created on %s with budget $%g", job.Platform, job.Budget),
			Timestamp:   job.CreatedAt,
		})
	}
	return activities, nil
}

// EarningsOverview возвращает захардкоженную сводку доходов.
func (s *DashboardServiceImpl) EarningsOverview() (*dto.EarningsOverviewResponse, error) {
	return &dto.EarningsOverviewResponse{
		TotalEarnings:   15000.0,
		MonthlyEarnings: 2500.0,
		WeeklyEarnings:  600.0,
		DailyEarnings:   85.0,
		CommissionRate:  0.15,
		PlatformFees:    2250.0,
		NetEarnings:     12750.0,
	}, nil
}

// EarningsChart возвращает захардкоженные точки графика по периоду.
func (s *DashboardServiceImpl) EarningsChart(period string) (*dto.EarningsChartResponse, error) {
	switch period {
	case "monthly", "":
		return &dto.EarningsChartResponse{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Data:   []float64{1200, 1800, 2200, 1900, 2500, 2800},
		}, nil
	case "weekly":
		return &dto.EarningsChartResponse{
			Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"},
			Data:   []float64{500, 600, 700, 800},
		}, nil
	default: // daily
		return &dto.EarningsChartResponse{
			Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Data:   []float64{100, 120, 90, 110, 130, 80, 95},
		}, nil
	}
}

// FreelancerStats считает статистику по работам, связанным с фрилансером.
func (s *DashboardServiceImpl) FreelancerStats(userID string) (*dto.FreelancerStatsResponse, error) {
	jobs, err := s.jobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.FreelancerStatsResponse{TotalJobs: len(jobs)}
	for i := range jobs {
		job := &jobs[i]
		switch job.Status {
		case models.JobStatusCompleted:
			stats.CompletedJobs++
			stats.TotalEarnings += job.Budget
		case models.JobStatusInProgress:
			stats.ActiveJobs++
		}
	}

	if stats.TotalJobs > 0 {
		stats.SuccessRate = float64(stats.CompletedJobs) / float64(stats.TotalJobs)
	}
	if stats.CompletedJobs > 0 {
		stats.AverageJobValue = stats.TotalEarnings / float64(stats.CompletedJobs)
	}
	return stats, nil
}
