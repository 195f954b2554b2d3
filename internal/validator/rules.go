package validator

import (
	"log"

	"kardash_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правило не зарегистрировалось - приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-bot-status", validateBotStatus)
	mustRegister("is-bot-account-status", validateBotAccountStatus)
	mustRegister("is-urgency", validateUrgency)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleFreelancer, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusAvailable, models.JobStatusInProgress, models.JobStatusDelivered,
		models.JobStatusCompleted, models.JobStatusCancelled:
		return true
	default:
		return false
	}
}

func validateBotStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BotStatus(value) {
	case models.BotStatusActive, models.BotStatusInactive, models.BotStatusError:
		return true
	default:
		return false
	}
}

func validateBotAccountStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BotAccountStatus(value) {
	case models.BotAccountStatusActive, models.BotAccountStatusPaused, models.BotAccountStatusDisabled:
		return true
	default:
		return false
	}
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "low", "medium", "high", "urgent":
		return true
	default:
		return false
	}
}
