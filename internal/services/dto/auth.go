package dto

import (
	"time"

	"kardash_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - ответ с токеном доступа
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// UserDTO - публичное представление пользователя
type UserDTO struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Role           models.UserRole `json:"role"`
	IsActive       bool            `json:"is_active"`
	SkillTags      string          `json:"skill_tags,omitempty"`
	HourlyRate     float64         `json:"hourly_rate"`
	TotalEarnings  float64         `json:"total_earnings"`
	Rating         float64         `json:"rating"`
	CompletedJobs  int             `json:"completed_jobs"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewUserDTO собирает DTO из модели
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		IsActive:      user.IsActive,
		SkillTags:     user.SkillTags,
		HourlyRate:    user.HourlyRate,
		TotalEarnings: user.TotalEarnings,
		Rating:        user.Rating,
		CompletedJobs: user.CompletedJobs,
		CreatedAt:     user.CreatedAt,
	}
}
