package dto

import (
	"time"

	"kardash_backend/internal/models"
)

// CreateNotificationRequest - создание уведомления (админ)
type CreateNotificationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// BulkNotificationRequest - массовая рассылка (админ)
type BulkNotificationRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1"`
	Type    string   `json:"type" binding:"required"`
	Message string   `json:"message" binding:"required"`
}

// ListNotificationsQuery - фильтры списка уведомлений.
// user_id учитывается только в админском листинге.
type ListNotificationsQuery struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type"`
	UserID     string `form:"user_id"`
	Skip       int    `form:"skip" validate:"gte=0"`
	Limit      int    `form:"limit" validate:"gte=0,lte=500"`
}

// NotificationDTO - представление уведомления
type NotificationDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse - счетчик непрочитанных
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// NewNotificationDTO собирает DTO из модели
func NewNotificationDTO(n *models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
