package services

import (
	"kardash_backend/internal/logger"
	"kardash_backend/internal/models"
	"kardash_backend/internal/repositories"
	"kardash_backend/internal/services/dto"
	"kardash_backend/pkg/apperrors"
)

type NotificationService interface {
	ListForUser(userID string, query *dto.ListNotificationsQuery) ([]dto.NotificationDTO, error)
	UnreadCount(userID string) (*dto.UnreadCountResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) (int64, error)
	Delete(userID, notificationID string) error
	DeleteAll(userID string) (int64, error)

	Create(req *dto.CreateNotificationRequest) (*dto.NotificationDTO, error)
	CreateBulk(req *dto.BulkNotificationRequest) (int, error)
	ListAll(query *dto.ListNotificationsQuery) ([]dto.NotificationDTO, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *NotificationServiceImpl) ListForUser(userID string, query *dto.ListNotificationsQuery) ([]dto.NotificationDTO, error) {
	notifications, err := s.notificationRepo.FindForUser(userID, query.UnreadOnly, query.Skip, query.Limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toNotificationDTOs(notifications), nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// MarkAllAsRead помечает все непрочитанные. Повторный вызов вернет 0.
func (s *NotificationServiceImpl) MarkAllAsRead(userID string) (int64, error) {
	count, err := s.notificationRepo.MarkAllAsRead(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) Delete(userID, notificationID string) error {
	if err := s.notificationRepo.Delete(userID, notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) DeleteAll(userID string) (int64, error) {
	count, err := s.notificationRepo.DeleteAllForUser(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

// Create - админское создание уведомления конкретному пользователю.
func (s *NotificationServiceImpl) Create(req *dto.CreateNotificationRequest) (*dto.NotificationDTO, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Message: req.Message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	d := dto.NewNotificationDTO(notification)
	return &d, nil
}

// CreateBulk рассылает одно сообщение списку пользователей.
// Несуществующие user_id пропускаются.
func (s *NotificationServiceImpl) CreateBulk(req *dto.BulkNotificationRequest) (int, error) {
	notifications := make([]models.Notification, 0, len(req.UserIDs))
	for _, userID := range req.UserIDs {
		if _, err := s.userRepo.FindByID(userID); err != nil {
			logger.Warn("bulk notification: unknown user skipped", "user_id", userID)
			continue
		}
		notifications = append(notifications, models.Notification{
			UserID:  userID,
			Type:    req.Type,
			Message: req.Message,
		})
	}

	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return len(notifications), nil
}

func (s *NotificationServiceImpl) ListAll(query *dto.ListNotificationsQuery) ([]dto.NotificationDTO, error) {
	filter := repositories.NotificationFilter{
		UserID:     query.UserID,
		Type:       query.Type,
		UnreadOnly: query.UnreadOnly,
		Skip:       query.Skip,
		Limit:      query.Limit,
	}

	notifications, err := s.notificationRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toNotificationDTOs(notifications), nil
}

func toNotificationDTOs(notifications []models.Notification) []dto.NotificationDTO {
	result := make([]dto.NotificationDTO, 0, len(notifications))
	for i := range notifications {
		result = append(result, dto.NewNotificationDTO(&notifications[i]))
	}
	return result
}
