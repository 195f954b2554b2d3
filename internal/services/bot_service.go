package services

import (
	"encoding/json"

	"kardash_backend/internal/logger"
	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/services/dto"
	"kardash_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type BotService interface {
	Create(req *dto.CreateBotRequest) (*dto.BotDTO, error)
	GetByID(botID string) (*dto.BotDTO, error)
	List(query *dto.ListBotsQuery) ([]dto.BotDTO, error)
	Update(botID string, req *dto.UpdateBotRequest) (*dto.BotDTO, error)
	Delete(botID string) error
	Start(botID string) (*dto.BotDTO, error)
	Stop(botID string) (*dto.BotDTO, error)
	GetActivities(botID string, limit int) ([]dto.BotActivityDTO, error)
	GetOverview() (*repositories.BotOverview, error)
}

type BotServiceImpl struct {
	botRepo repositories.BotRepository
}

func NewBotService(botRepo repositories.BotRepository) BotService {
	return &BotServiceImpl{botRepo: botRepo}
}

func (s *BotServiceImpl) Create(req *dto.CreateBotRequest) (*dto.BotDTO, error) {
	bot := &models.Bot{
		Name:     req.Name,
		Platform: req.Platform,
		Status:   models.BotStatusInactive,
	}

	if req.Config != nil {
		raw, err := json.Marshal(req.Config)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid bot config: " + err.Error())
		}
		bot.Config = datatypes.JSON(raw)
	}

	if err := s.botRepo.Create(bot); err != nil {
		if apperrors.Is(err, repositories.ErrBotNameTaken) {
			return nil, apperrors.ErrBotNameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("bot created", "bot_id", bot.ID, "name", bot.Name, "platform", bot.Platform)

	d := dto.NewBotDTO(bot)
	return &d, nil
}

func (s *BotServiceImpl) GetByID(botID string) (*dto.BotDTO, error) {
	bot, err := s.findBot(botID)
	if err != nil {
		return nil, err
	}
	d := dto.NewBotDTO(bot)
	return &d, nil
}

func (s *BotServiceImpl) List(query *dto.ListBotsQuery) ([]dto.BotDTO, error) {
	filter := repositories.BotFilter{
		Status:   models.BotStatus(query.Status),
		Platform: query.Platform,
		Skip:     query.Skip,
		Limit:    query.Limit,
	}

	bots, err := s.botRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.BotDTO, 0, len(bots))
	for i := range bots {
		result = append(result, dto.NewBotDTO(&bots[i]))
	}
	return result, nil
}

func (s *BotServiceImpl) Update(botID string, req *dto.UpdateBotRequest) (*dto.BotDTO, error) {
	if _, err := s.findBot(botID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		// Новое имя не должно быть занято другим ботом
		if existing, err := s.botRepo.FindByName(*req.Name); err == nil && existing.ID != botID {
			return nil, apperrors.ErrBotNameTaken
		}
		fields["name"] = *req.Name
	}
	if req.Platform != nil {
		fields["platform"] = *req.Platform
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Config != nil {
		raw, err := json.Marshal(req.Config)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid bot config: " + err.Error())
		}
		fields["config"] = datatypes.JSON(raw)
	}

	if len(fields) > 0 {
		if err := s.botRepo.UpdateFields(botID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(botID)
}

func (s *BotServiceImpl) Delete(botID string) error {
	if err := s.botRepo.Delete(botID); err != nil {
		if apperrors.Is(err, repositories.ErrBotNotFound) {
			return apperrors.ErrNotFound(err, "bot", "Bot not found")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("bot deleted", "bot_id", botID)
	return nil
}

func (s *BotServiceImpl) Start(botID string) (*dto.BotDTO, error) {
	bot, err := s.findBot(botID)
	if err != nil {
		return nil, err
	}

	if err := s.botRepo.SetStatus(botID, models.BotStatusActive); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.logActivity(bot.ID, models.BotActivityStart, map[string]interface{}{"action": "started"})
	return s.GetByID(botID)
}

func (s *BotServiceImpl) Stop(botID string) (*dto.BotDTO, error) {
	bot, err := s.findBot(botID)
	if err != nil {
		return nil, err
	}

	if err := s.botRepo.SetStatus(botID, models.BotStatusInactive); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.logActivity(bot.ID, models.BotActivityStop, map[string]interface{}{"action": "stopped"})
	return s.GetByID(botID)
}

func (s *BotServiceImpl) GetActivities(botID string, limit int) ([]dto.BotActivityDTO, error) {
	if _, err := s.findBot(botID); err != nil {
		return nil, err
	}

	activities, err := s.botRepo.FindActivities(botID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.BotActivityDTO, 0, len(activities))
	for i := range activities {
		result = append(result, dto.NewBotActivityDTO(&activities[i]))
	}
	return result, nil
}

func (s *BotServiceImpl) GetOverview() (*repositories.BotOverview, error) {
	overview, err := s.botRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return overview, nil
}

// Журнал append-only, сбой записи не валит операцию.
func (s *BotServiceImpl) logActivity(botID string, activityType models.BotActivityType, details map[string]interface{}) {
	raw, err := json.Marshal(details)
	if err != nil {
		logger.WithError(err).Warn("failed to marshal bot activity details", "bot_id", botID)
		return
	}

	activity := &models.BotActivity{
		BotID:        botID,
		ActivityType: activityType,
		Details:      datatypes.JSON(raw),
	}
	if err := s.botRepo.CreateActivity(activity); err != nil {
		logger.WithError(err).Warn("failed to log bot activity", "bot_id", botID)
	}
}

func (s *BotServiceImpl) findBot(botID string) (*models.Bot, error) {
	bot, err := s.botRepo.FindByID(botID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBotNotFound) {
			return nil, apperrors.ErrNotFound(err, "bot", "Bot not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return bot, nil
}
