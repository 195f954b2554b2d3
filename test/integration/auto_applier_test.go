package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"kardash_backend/internal/models"
	"kardash_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoApplierConfig(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, _ := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	// Без сохраненной конфигурации возвращаются дефолты
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/config", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var config struct {
		Keywords  []string `json:"keywords"`
		MinBudget float64  `json:"min_budget"`
		MaxBudget float64  `json:"max_budget"`
		Platforms []string `json:"platforms"`
		AutoApply bool     `json:"auto_apply"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &config))
	assert.Equal(t, []string{"React", "Python", "Web Development"}, config.Keywords)
	assert.Equal(t, 100.0, config.MinBudget)
	assert.Equal(t, 5000.0, config.MaxBudget)
	assert.True(t, config.AutoApply)

	// Сохранение своей конфигурации
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/configure", userToken, map[string]interface{}{
		"keywords":   []string{"Go", "PostgreSQL"},
		"min_budget": 500.0,
		"max_budget": 3000.0,
		"platforms":  []string{"Upwork"},
		"auto_apply": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/config", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &config))
	assert.Equal(t, []string{"Go", "PostgreSQL"}, config.Keywords)
	assert.Equal(t, 500.0, config.MinBudget)
	assert.Equal(t, 3000.0, config.MaxBudget)
	assert.Equal(t, []string{"Upwork"}, config.Platforms)
}

func TestAutoApplierStartStop(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, user := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	// Старт создает персонального бота
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/start", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var bot models.Bot
	require.NoError(t, ts.DB.Where("name = ?", "auto_applier_"+user.ID).First(&bot).Error)
	assert.Equal(t, "auto_applier", bot.Platform)
	assert.Equal(t, models.BotStatusActive, bot.Status)

	// Статус отражает активного бота
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/status", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var status struct {
		Active      bool    `json:"active"`
		JobsApplied int     `json:"jobs_applied"`
		SuccessRate float64 `json:"success_rate"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.True(t, status.Active)

	// Стоп
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/stop", userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&bot, "id = ?", bot.ID).Error)
	assert.Equal(t, models.BotStatusInactive, bot.Status)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/status", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.False(t, status.Active)

	// Повторный стоп идемпотентен
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/stop", userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAutoApplierManualApply(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	userToken, user := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	job := helpers.CreateTestJob(t, ts.DB, admin.ID, "Scrape data", 1000)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/apply/"+job.ID, userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var result struct {
		JobID     string  `json:"job_id"`
		Proposal  string  `json:"proposal"`
		BidAmount float64 `json:"bid_amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, job.ID, result.JobID)
	assert.Equal(t, 900.0, result.BidAmount)
	assert.Contains(t, result.Proposal, "I'm interested in your project 'Scrape data'")

	// Заявка реально создана
	var application models.JobApplication
	require.NoError(t, ts.DB.Where("job_id = ? AND user_id = ?", job.ID, user.ID).First(&application).Error)
	assert.Equal(t, 900.0, application.BidAmount)

	// Повторный авто-отклик запрещен
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/apply/"+job.ID, userToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// На недоступную работу откликнуться нельзя
	closedJob := helpers.CreateTestJob(t, ts.DB, admin.ID, "Closed job", 500)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", closedJob.ID).Update("status", models.JobStatusCompleted).Error)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/apply/"+closedJob.ID, userToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAutoApplierSuggestions(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	// Бюджетный диапазон по умолчанию 100..5000
	helpers.CreateTestJob(t, ts.DB, admin.ID, "Cheap gig", 50)
	helpers.CreateTestJob(t, ts.DB, admin.ID, "Good gig", 1500)
	helpers.CreateTestJob(t, ts.DB, admin.ID, "Expensive gig", 9000)

	longDescription := strings.Repeat("x", 250)
	longJob := helpers.CreateTestJob(t, ts.DB, admin.ID, "Wordy gig", 2000)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", longJob.ID).Update("description", longDescription).Error)

	// Многобайтное описание не должно рваться посреди символа
	cyrillicJob := helpers.CreateTestJob(t, ts.DB, admin.ID, "Кириллица gig", 2500)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", cyrillicJob.ID).Update("description", strings.Repeat("ж", 250)).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/suggestions", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var suggestions []struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Budget      float64 `json:"budget"`
		MatchScore  float64 `json:"match_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &suggestions))
	require.Len(t, suggestions, 3)

	for _, s := range suggestions {
		assert.GreaterOrEqual(t, s.Budget, 100.0)
		assert.LessOrEqual(t, s.Budget, 5000.0)
		assert.Equal(t, 0.85, s.MatchScore)
		if s.Title == "Wordy gig" {
			assert.Equal(t, strings.Repeat("x", 200)+"...", s.Description)
		}
		if s.Title == "Кириллица gig" {
			assert.Equal(t, strings.Repeat("ж", 200)+"...", s.Description)
			assert.True(t, utf8.ValidString(s.Description))
		}
	}
}

func TestAutoApplierStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	userToken, _ := helpers.CreateAndLoginUser(t, ts, "User", "user@example.com", "password123", models.UserRoleFreelancer)

	job := helpers.CreateTestJob(t, ts.DB, admin.ID, "Tracked job", 1000)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/start", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auto-applier/apply/"+job.ID, userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/stats", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var stats struct {
		TotalJobsFound         int     `json:"total_jobs_found"`
		JobsApplied            int     `json:"jobs_applied"`
		TotalEarningsPotential float64 `json:"total_earnings_potential"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, 1, stats.JobsApplied)

	// Список авто-откликов с вложенной работой
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auto-applier/applications", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var applications []struct {
		JobID    string `json:"job_id"`
		JobTitle string `json:"job_title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &applications))
	require.Len(t, applications, 1)
	assert.Equal(t, "Tracked job", applications[0].JobTitle)
}
