package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"kardash_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя, хешируя сырой пароль при необходимости.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	user.IsActive = true
	if user.Role == "" {
		user.Role = models.UserRoleFreelancer
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // сырой пароль, захешируется в CreateUser
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	user.PasswordHash = password
	return loginResponse.Token, user
}

// CreateTestJob создает работу напрямую в БД.
func CreateTestJob(t *testing.T, db *gorm.DB, creatorID, title string, budget float64) models.Job {
	job := models.Job{
		Title:       title,
		Description: "Test description",
		Budget:      budget,
		Platform:    "Upwork",
		Status:      models.JobStatusAvailable,
		UserID:      creatorID,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("Не удалось создать тестовую работу: %v", err)
	}
	return job
}

// CreateTestNotification создает уведомление напрямую в БД.
func CreateTestNotification(t *testing.T, db *gorm.DB, userID, message string) models.Notification {
	notification := models.Notification{
		UserID:  userID,
		Type:    "system",
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		t.Fatalf("Не удалось создать тестовое уведомление: %v", err)
	}
	return notification
}
