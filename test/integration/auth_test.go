package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"kardash_backend/internal/models"
	"kardash_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"email":    "newbie@example.com",
		"password": "password123",
		"name":     "New Freelancer",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var authResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &authResponse))
	assert.NotEmpty(t, authResponse.AccessToken)
	assert.Equal(t, "bearer", authResponse.TokenType)
	assert.Equal(t, "newbie@example.com", authResponse.User.Email)
	assert.Equal(t, "freelancer", authResponse.User.Role)

	// Логин с теми же кредами
	loginBody := map[string]interface{}{
		"email":    "newbie@example.com",
		"password": "password123",
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"email":    "dup@example.com",
		"password": "password123",
		"name":     "First",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "Ответ: "+body)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	loginBody := map[string]interface{}{
		"email":    "user@example.com",
		"password": "wrong-password",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginDeactivatedUser(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginUser(t, ts, "Blocked", "blocked@example.com", "password123", models.UserRoleFreelancer)

	err := ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    "blocked@example.com",
		"password": "password123",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	// Невалидный email
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "not-an-email",
		"password": "password123",
		"name":     "X",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Короткий пароль
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "short@example.com",
		"password": "123",
		"name":     "X",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
