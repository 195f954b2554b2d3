package services

import (
	"kardash_backend/internal/logger"
	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/services/dto"
	"kardash_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(userID string) (*dto.UserDTO, error)
	List(query *dto.ListUsersQuery) ([]dto.UserDTO, error)
	Update(callerID string, callerRole models.UserRole, targetID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error)
	SetActive(callerID, targetID string, active bool) (*dto.UserDTO, error)
	Delete(callerID, targetID string) error
	GetStats(userID string) (*dto.UserStatsResponse, error)
	GetOverview() (*repositories.UserOverview, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewUserService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, jobRepo: jobRepo}
}

func (s *UserServiceImpl) GetByID(userID string) (*dto.UserDTO, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	d := dto.NewUserDTO(user)
	return &d, nil
}

func (s *UserServiceImpl) List(query *dto.ListUsersQuery) ([]dto.UserDTO, error) {
	filter := repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		IsActive: query.IsActive,
		Skip:     query.Skip,
		Limit:    query.Limit,
	}

	users, err := s.userRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, dto.NewUserDTO(&users[i]))
	}
	return result, nil
}

// Update меняет профиль. Роль и is_active может трогать только админ.
func (s *UserServiceImpl) Update(callerID string, callerRole models.UserRole, targetID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	if callerID != targetID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.SkillTags != nil {
		fields["skill_tags"] = *req.SkillTags
	}
	if req.HourlyRate != nil {
		fields["hourly_rate"] = *req.HourlyRate
	}

	if req.Role != nil || req.IsActive != nil {
		if callerRole != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if req.Role != nil {
			fields["role"] = *req.Role
		}
		if req.IsActive != nil {
			if callerID == targetID && !*req.IsActive {
				return nil, apperrors.ErrCannotModifySelf
			}
			fields["is_active"] = *req.IsActive
		}
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(targetID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err, "user", "User not found")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(targetID)
}

// SetActive активирует/деактивирует аккаунт. Себя деактивировать нельзя.
func (s *UserServiceImpl) SetActive(callerID, targetID string, active bool) (*dto.UserDTO, error) {
	if callerID == targetID && !active {
		return nil, apperrors.ErrCannotModifySelf
	}

	if _, err := s.findUser(targetID); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetActive(targetID, active); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user active flag changed", "user_id", targetID, "is_active", active, "by", callerID)
	return s.GetByID(targetID)
}

// Delete удаляет пользователя вместе с заявками и уведомлениями.
func (s *UserServiceImpl) Delete(callerID, targetID string) error {
	if callerID == targetID {
		return apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted", "user_id", targetID, "by", callerID)
	return nil
}

func (s *UserServiceImpl) GetStats(userID string) (*dto.UserStatsResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var activeJobs int64
	for i := range jobs {
		if jobs[i].Status == models.JobStatusInProgress || jobs[i].Status == models.JobStatusDelivered {
			activeJobs++
		}
	}

	totalApps, err := s.jobRepo.CountUserApplications(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	acceptedApps, err := s.jobRepo.CountUserApplicationsByStatus(userID, models.ApplicationStatusAccepted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserStatsResponse{
		TotalEarnings:        user.TotalEarnings,
		CompletedJobs:        user.CompletedJobs,
		ActiveJobs:           activeJobs,
		TotalApplications:    totalApps,
		AcceptedApplications: acceptedApps,
		Rating:               user.Rating,
	}, nil
}

func (s *UserServiceImpl) GetOverview() (*repositories.UserOverview, error) {
	overview, err := s.userRepo.GetOverview()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return overview, nil
}

func (s *UserServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
