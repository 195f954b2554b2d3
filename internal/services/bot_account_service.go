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

type BotAccountService interface {
	Create(ownerID string, req *dto.CreateBotAccountRequest) (*dto.BotAccountDTO, error)
	GetByID(accountID string) (*dto.BotAccountDTO, error)
	List(query *dto.ListBotAccountsQuery) ([]dto.BotAccountDTO, error)
	Update(accountID string, req *dto.UpdateBotAccountRequest) (*dto.BotAccountDTO, error)
	Delete(accountID string) error
	Pause(accountID string) (*dto.BotAccountDTO, error)
	Activate(accountID string) (*dto.BotAccountDTO, error)
	Disable(accountID string) (*dto.BotAccountDTO, error)
	GetOverview() (*repositories.BotAccountOverview, error)
}

type BotAccountServiceImpl struct {
	accountRepo repositories.BotAccountRepository
}

func NewBotAccountService(accountRepo repositories.BotAccountRepository) BotAccountService {
	return &BotAccountServiceImpl{accountRepo: accountRepo}
}

func (s *BotAccountServiceImpl) Create(ownerID string, req *dto.CreateBotAccountRequest) (*dto.BotAccountDTO, error) {
	account := &models.BotAccount{
		Name:     req.Name,
		Platform: req.Platform,
		Status:   models.BotAccountStatusActive,
		Profile:  req.Profile,
	}
	if ownerID != "" {
		account.OwnerID = &ownerID
	}
	if req.Config != nil {
		raw, err := json.Marshal(req.Config)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid account config: " + err.Error())
		}
		account.Config = datatypes.JSON(raw)
	}

	if err := s.accountRepo.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrBotAccountNameTaken) {
			return nil, apperrors.ErrBotAccountNameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("bot account created", "account_id", account.ID, "name", account.Name)

	d := dto.NewBotAccountDTO(account)
	return &d, nil
}

func (s *BotAccountServiceImpl) GetByID(accountID string) (*dto.BotAccountDTO, error) {
	account, err := s.findAccount(accountID)
	if err != nil {
		return nil, err
	}
	d := dto.NewBotAccountDTO(account)
	return &d, nil
}

func (s *BotAccountServiceImpl) List(query *dto.ListBotAccountsQuery) ([]dto.BotAccountDTO, error) {
	filter := repositories.BotAccountFilter{
		Status:   models.BotAccountStatus(query.Status),
		Platform: query.Platform,
		Skip:     query.Skip,
		Limit:    query.Limit,
	}

	accounts, err := s.accountRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.BotAccountDTO, 0, len(accounts))
	for i := range accounts {
		result = append(result, dto.NewBotAccountDTO(&accounts[i]))
	}
	return result, nil
}

func (s *BotAccountServiceImpl) Update(accountID string, req *dto.UpdateBotAccountRequest) (*dto.BotAccountDTO, error) {
	if _, err := s.findAccount(accountID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if existing, err := s.accountRepo.FindByName(*req.Name); err == nil && existing.ID != accountID {
			return nil, apperrors.ErrBotAccountNameTaken
		}
		fields["name"] = *req.Name
	}
	if req.Platform != nil {
		fields["platform"] = *req.Platform
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Profile != nil {
		fields["profile"] = *req.Profile
	}
	if req.Config != nil {
		raw, err := json.Marshal(req.Config)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid account config: " + err.Error())
		}
		fields["config"] = datatypes.JSON(raw)
	}

	if len(fields) > 0 {
		if err := s.accountRepo.UpdateFields(accountID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(accountID)
}

func (s *BotAccountServiceImpl) Delete(accountID string) error {
	if err := s.accountRepo.Delete(accountID); err != nil {
		if apperrors.Is(err, repositories.ErrBotAccountNotFound) {
			return apperrors.ErrNotFound(err, "bot_account", "Bot account not found")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("bot account deleted", "account_id", accountID)
	return nil
}

func (s *BotAccountServiceImpl) Pause(accountID string) (*dto.BotAccountDTO, error) {
	return s.setStatus(accountID, models.BotAccountStatusPaused)
}

func (s *BotAccountServiceImpl) Activate(accountID string) (*dto.BotAccountDTO, error) {
	return s.setStatus(accountID, models.BotAccountStatusActive)
}

func (s *BotAccountServiceImpl) Disable(accountID string) (*dto.BotAccountDTO, error) {
	return s.setStatus(accountID, models.BotAccountStatusDisabled)
}

func (s *BotAccountServiceImpl) GetOverview() (*repositories.BotAccountOverview, error) {
	overview, err := s.accountRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return overview, nil
}

func (s *BotAccountServiceImpl) setStatus(accountID string, status models.BotAccountStatus) (*dto.BotAccountDTO, error) {
	account, err := s.findAccount(accountID)
	if err != nil {
		return nil, err
	}

	// Выключенный аккаунт можно только включить явно через Update
	if account.Status == models.BotAccountStatusDisabled && status == models.BotAccountStatusPaused {
		return nil, apperrors.ErrInvalidOperation("bot_account", "Cannot pause a disabled account")
	}

	if err := s.accountRepo.SetStatus(accountID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("bot account status changed", "account_id", accountID, "status", status)
	return s.GetByID(accountID)
}

func (s *BotAccountServiceImpl) findAccount(accountID string) (*models.BotAccount, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBotAccountNotFound) {
			return nil, apperrors.ErrNotFound(err, "bot_account", "Bot account not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}
