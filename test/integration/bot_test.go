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

func TestBotCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	// Боты доступны только админам
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/bots", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Создание бота
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/bots", adminToken, map[string]interface{}{
		"name":     "upwork-scraper",
		"platform": "Upwork",
		"config":   map[string]interface{}{"interval_minutes": 15},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var bot struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &bot))
	assert.Equal(t, "upwork-scraper", bot.Name)
	assert.Equal(t, "inactive", bot.Status)

	// Имя бота уникально
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/bots", adminToken, map[string]interface{}{
		"name":     "upwork-scraper",
		"platform": "Fiverr",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Обновление
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/bots/"+bot.ID, adminToken, map[string]interface{}{
		"name": "upwork-scraper-v2",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var updated struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "upwork-scraper-v2", updated.Name)

	// Листинг
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/bots", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var bots []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &bots))
	assert.Len(t, bots, 1)

	// Удаление
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/bots/"+bot.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bots/"+bot.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestBotStartStopActivities(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/bots", adminToken, map[string]interface{}{
		"name":     "fiverr-scraper",
		"platform": "Fiverr",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	var bot struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &bot))

	// Старт переводит в active и проставляет last_active
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/bots/"+bot.ID+"/start", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var started struct {
		Status     string  `json:"status"`
		LastActive *string `json:"last_active"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &started))
	assert.Equal(t, "active", started.Status)
	assert.NotNil(t, started.LastActive)

	// Стоп
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/bots/"+bot.ID+"/stop", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var stopped struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stopped))
	assert.Equal(t, "inactive", stopped.Status)

	// Старт и стоп залогированы в журнале активности
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/bots/"+bot.ID+"/activities", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var activities []struct {
		ActivityType string `json:"activity_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &activities))
	require.Len(t, activities, 2)
	assert.Equal(t, "stop", activities[0].ActivityType)
	assert.Equal(t, "start", activities[1].ActivityType)
}

func TestBotOverview(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)

	for _, name := range []string{"bot-a", "bot-b"} {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bots", adminToken, map[string]interface{}{
			"name":     name,
			"platform": "Upwork",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/bots/stats/overview", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var overview struct {
		TotalBots  int64 `json:"total_bots"`
		ActiveBots int64 `json:"active_bots"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &overview))
	assert.Equal(t, int64(2), overview.TotalBots)
	assert.Equal(t, int64(0), overview.ActiveBots)
}
