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

func TestBotAccountCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	// Доступ только админам
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/bot-accounts", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Создание аккаунта
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts", adminToken, map[string]interface{}{
		"name":     "upwork-main",
		"platform": "Upwork",
		"profile":  "Senior developer profile",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var account struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		Status  string  `json:"status"`
		OwnerID *string `json:"owner_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &account))
	assert.Equal(t, "upwork-main", account.Name)
	assert.Equal(t, "active", account.Status)
	require.NotNil(t, account.OwnerID)
	assert.Equal(t, admin.ID, *account.OwnerID)

	// Имя уникально
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts", adminToken, map[string]interface{}{
		"name":     "upwork-main",
		"platform": "Fiverr",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Обновление
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/bot-accounts/"+account.ID, adminToken, map[string]interface{}{
		"profile": "Updated profile",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	// Удаление
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/bot-accounts/"+account.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bot-accounts/"+account.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestBotAccountLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts", adminToken, map[string]interface{}{
		"name":     "fiverr-main",
		"platform": "Fiverr",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	var account struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &account))

	var status struct {
		Status string `json:"status"`
	}

	// Пауза
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts/"+account.ID+"/pause", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, "paused", status.Status)

	// Возобновление
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts/"+account.ID+"/activate", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, "active", status.Status)

	// Отключение
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts/"+account.ID+"/disable", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, "disabled", status.Status)

	// Отключенный аккаунт поставить на паузу нельзя
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts/"+account.ID+"/pause", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBotAccountOverview(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)

	for _, name := range []string{"acc-a", "acc-b", "acc-c"} {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts", adminToken, map[string]interface{}{
			"name":     name,
			"platform": "Upwork",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	// Один аккаунт на паузе
	var account models.BotAccount
	require.NoError(t, ts.DB.Where("name = ?", "acc-c").First(&account).Error)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bot-accounts/"+account.ID+"/pause", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/bot-accounts/stats/overview", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var overview struct {
		TotalAccounts  int64 `json:"total_accounts"`
		ActiveAccounts int64 `json:"active_accounts"`
		PausedAccounts int64 `json:"paused_accounts"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &overview))
	assert.Equal(t, int64(3), overview.TotalAccounts)
	assert.Equal(t, int64(2), overview.ActiveAccounts)
	assert.Equal(t, int64(1), overview.PausedAccounts)
}
