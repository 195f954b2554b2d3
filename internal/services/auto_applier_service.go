package services

import (
	"encoding/json"
	"fmt"

	"kardash_backend/internal/logger"
	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/services/dto"
	"kardash_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// Платформа персональных ботов авто-откликов
const autoApplierPlatform = "auto_applier"

type AutoApplierService interface {
	Configure(userID string, config *dto.AutoApplyConfig) (*dto.AutoApplyConfig, error)
	GetConfig(userID string) (*dto.AutoApplyConfig, error)
	Start(userID string) error
	Stop(userID string) error
	Status(userID string) (*dto.AutoApplierStatusResponse, error)
	Applications(userID string, skip, limit int) ([]dto.AutoApplicationDTO, error)
	Stats(userID string) (*dto.AutoApplierStatsResponse, error)
	Apply(userID, jobID string) (*dto.ManualApplyResponse, error)
	Suggestions(userID string, limit int) ([]dto.JobSuggestionDTO, error)
}

type AutoApplierServiceImpl struct {
	botRepo repositories.BotRepository
	jobRepo repositories.JobRepository
}

func NewAutoApplierService(botRepo repositories.BotRepository, jobRepo repositories.JobRepository) AutoApplierService {
	return &AutoApplierServiceImpl{botRepo: botRepo, jobRepo: jobRepo}
}

// Конфиг бота авто-откликов в JSONB: user_id плюс пользовательские настройки
type autoApplierBotConfig struct {
	UserID string `json:"user_id"`
	dto.AutoApplyConfig
}

func autoApplierBotName(userID string) string {
	return fmt.Sprintf("auto_applier_%s", userID)
}

// Configure сохраняет настройки в JSONB конфиге персонального бота,
// создавая бот при первом обращении.
func (s *AutoApplierServiceImpl) Configure(userID string, config *dto.AutoApplyConfig) (*dto.AutoApplyConfig, error) {
	bot, err := s.getOrCreateBot(userID, config)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(autoApplierBotConfig{UserID: userID, AutoApplyConfig: *config})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.botRepo.UpdateFields(bot.ID, map[string]interface{}{
		"config": datatypes.JSON(raw),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("auto-applier configured", "user_id", userID, "bot_id", bot.ID)
	return config, nil
}

func (s *AutoApplierServiceImpl) GetConfig(userID string) (*dto.AutoApplyConfig, error) {
	bot, err := s.botRepo.FindByName(autoApplierBotName(userID))
	if err != nil {
		if apperrors.Is(err, repositories.ErrBotNotFound) {
			cfg := dto.DefaultAutoApplyConfig()
			return &cfg, nil
		}
		return nil, apperrors.InternalError(err)
	}

	cfg := s.parseConfig(bot)
	return &cfg, nil
}

func (s *AutoApplierServiceImpl) Start(userID string) error {
	cfg := dto.DefaultAutoApplyConfig()
	bot, err := s.getOrCreateBot(userID, &cfg)
	if err != nil {
		return err
	}

	if err := s.botRepo.SetStatus(bot.ID, models.BotStatusActive); err != nil {
		return apperrors.InternalError(err)
	}

	s.logActivity(bot.ID, models.BotActivityStart, map[string]interface{}{
		"user_id": userID,
		"action":  "started_auto_applier",
	})
	return nil
}

// Stop идемпотентен: без бота это no-op.
func (s *AutoApplierServiceImpl) Stop(userID string) error {
	bot, err := s.botRepo.FindByName(autoApplierBotName(userID))
	if err != nil {
		if apperrors.Is(err, repositories.ErrBotNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	if err := s.botRepo.SetStatus(bot.ID, models.BotStatusInactive); err != nil {
		return apperrors.InternalError(err)
	}

	s.logActivity(bot.ID, models.BotActivityStop, map[string]interface{}{
		"user_id": userID,
		"action":  "stopped_auto_applier",
	})
	return nil
}

func (s *AutoApplierServiceImpl) Status(userID string) (*dto.AutoApplierStatusResponse, error) {
	bot, err := s.botRepo.FindByName(autoApplierBotName(userID))
	if err != nil {
		if apperrors.Is(err, repositories.ErrBotNotFound) {
			return &dto.AutoApplierStatusResponse{}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.AutoApplierStatusResponse{
		Active:      bot.Status == models.BotStatusActive,
		LastActive:  bot.LastActive,
		JobsScraped: bot.JobsScraped,
		JobsApplied: bot.JobsApplied,
		SuccessRate: bot.SuccessRate,
	}, nil
}

func (s *AutoApplierServiceImpl) Applications(userID string, skip, limit int) ([]dto.AutoApplicationDTO, error) {
	apps, err := s.jobRepo.FindUserApplications(userID, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.AutoApplicationDTO, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		if app.Job == nil {
			continue
		}
		result = append(result, dto.AutoApplicationDTO{
			JobID:     app.JobID,
			JobTitle:  app.Job.Title,
			Platform:  app.Job.Platform,
			Budget:    app.Job.Budget,
			Applied:   true,
			Proposal:  app.Proposal,
			BidAmount: app.BidAmount,
			Timestamp: app.CreatedAt,
		})
	}
	return result, nil
}

func (s *AutoApplierServiceImpl) Stats(userID string) (*dto.AutoApplierStatsResponse, error) {
	stats := &dto.AutoApplierStatsResponse{}

	if bot, err := s.botRepo.FindByName(autoApplierBotName(userID)); err == nil {
		stats.TotalJobsFound = bot.JobsScraped
		stats.LastActivity = bot.LastActive
	} else if !apperrors.Is(err, repositories.ErrBotNotFound) {
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.jobRepo.FindUserApplications(userID, 0, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats.JobsApplied = len(apps)
	if stats.TotalJobsFound > 0 {
		stats.SuccessRate = float64(stats.JobsApplied) / float64(stats.TotalJobsFound) * 100
	}
	for i := range apps {
		stats.TotalEarningsPotential += apps[i].BidAmount
	}
	return stats, nil
}

// Apply создает авто-отклик на конкретную работу.
// Ставка 90% бюджета, текст генерируется из шаблона.
func (s *AutoApplierServiceImpl) Apply(userID, jobID string) (*dto.ManualApplyResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusAvailable {
		return nil, apperrors.ErrJobNotOpen
	}

	proposal := fmt.Sprintf(
		"I'm interested in your project '%s'. I have relevant experience and can deliver high-quality results within your budget and timeline.",
		job.Title,
	)
	bidAmount := job.Budget * 0.9

	app := &models.JobApplication{
		JobID:     jobID,
		UserID:    userID,
		Proposal:  proposal,
		BidAmount: bidAmount,
		Status:    models.ApplicationStatusPending,
	}
	if err := s.jobRepo.CreateApplication(app); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	if bot, err := s.botRepo.FindByName(autoApplierBotName(userID)); err == nil {
		if err := s.botRepo.IncrementCounters(bot.ID, 0, 1); err != nil {
			logger.WithError(err).Warn("failed to bump auto-applier counters", "bot_id", bot.ID)
		}
		s.logActivity(bot.ID, models.BotActivityApply, map[string]interface{}{
			"user_id": userID,
			"job_id":  jobID,
		})
	}

	logger.Info("auto-application submitted", "user_id", userID, "job_id", jobID, "bid", bidAmount)

	return &dto.ManualApplyResponse{
		Message:   "Auto-application submitted successfully",
		JobID:     jobID,
		Proposal:  proposal,
		BidAmount: bidAmount,
	}, nil
}

// Suggestions подбирает доступные работы под бюджетные рамки конфига.
func (s *AutoApplierServiceImpl) Suggestions(userID string, limit int) ([]dto.JobSuggestionDTO, error) {
	cfg, err := s.GetConfig(userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindSuggestions(cfg.MinBudget, cfg.MaxBudget, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.JobSuggestionDTO, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		description := job.Description
		// Обрезаем по рунам, чтобы не разрезать многобайтный символ
		if runes := []rune(description); len(runes) > 200 {
			description = string(runes[:200]) + "..."
		}
		result = append(result, dto.JobSuggestionDTO{
			ID:          job.ID,
			Title:       job.Title,
			Description: description,
			Budget:      job.Budget,
			Platform:    job.Platform,
			IsUrgent:    job.IsUrgent,
			MatchScore:  0.85,
		})
	}
	return result, nil
}

func (s *AutoApplierServiceImpl) getOrCreateBot(userID string, cfg *dto.AutoApplyConfig) (*models.Bot, error) {
	name := autoApplierBotName(userID)

	bot, err := s.botRepo.FindByName(name)
	if err == nil {
		return bot, nil
	}
	if !apperrors.Is(err, repositories.ErrBotNotFound) {
		return nil, apperrors.InternalError(err)
	}

	raw, err := json.Marshal(autoApplierBotConfig{UserID: userID, AutoApplyConfig: *cfg})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	bot = &models.Bot{
		Name:     name,
		Platform: autoApplierPlatform,
		Status:   models.BotStatusInactive,
		Config:   datatypes.JSON(raw),
	}
	if err := s.botRepo.Create(bot); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("auto-applier bot created", "user_id", userID, "bot_id", bot.ID)
	return bot, nil
}

func (s *AutoApplierServiceImpl) parseConfig(bot *models.Bot) dto.AutoApplyConfig {
	cfg := dto.DefaultAutoApplyConfig()
	if len(bot.Config) == 0 {
		return cfg
	}

	var stored autoApplierBotConfig
	if err := json.Unmarshal(bot.Config, &stored); err != nil {
		logger.WithError(err).Warn("broken auto-applier config, using defaults", "bot_id", bot.ID)
		return cfg
	}
	return stored.AutoApplyConfig
}

func (s *AutoApplierServiceImpl) logActivity(botID string, activityType models.BotActivityType, details map[string]interface{}) {
	raw, err := json.Marshal(details)
	if err != nil {
		return
	}

	activity := &models.BotActivity{
		BotID:        botID,
		ActivityType: activityType,
		Details:      datatypes.JSON(raw),
	}
	if err := s.botRepo.CreateActivity(activity); err != nil {
		logger.WithError(err).Warn("failed to log auto-applier activity", "bot_id", botID)
	}
}
