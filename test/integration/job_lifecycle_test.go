package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"kardash_backend/internal/models"
	"kardash_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobFullLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	freelancerToken, freelancer := helpers.CreateAndLoginUser(t, ts, "Freelancer", "freelancer@example.com", "password123", models.UserRoleFreelancer)
	rivalToken, _ := helpers.CreateAndLoginUser(t, ts, "Rival", "rival@example.com", "password123", models.UserRoleFreelancer)

	// Админ создает работу
	createBody := map[string]interface{}{
		"title":       "Build landing page",
		"description": "Simple landing page",
		"budget":      1000.0,
		"platform":    "Upwork",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", adminToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var job struct {
		ID             string  `json:"id"`
		Status         string  `json:"status"`
		CommissionRate float64 `json:"commission_rate"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	assert.Equal(t, "available", job.Status)

	// Первый фрилансер подается без явного бида: дефолт 0.9 * бюджет
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", freelancerToken, map[string]interface{}{
		"proposal": "I can build this",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var application struct {
		ID        string  `json:"id"`
		BidAmount float64 `json:"bid_amount"`
		Status    string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))
	assert.Equal(t, 900.0, application.BidAmount)
	assert.Equal(t, "pending", application.Status)

	// Повторная подача того же фрилансера запрещена
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", freelancerToken, map[string]interface{}{
		"proposal": "Again",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Второй фрилансер тоже подается
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", rivalToken, map[string]interface{}{
		"proposal":   "Me too",
		"bid_amount": 950.0,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	// Админ видит обе заявки
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var applications []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &applications))
	assert.Len(t, applications, 2)

	// Назначение первого фрилансера
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/assign", adminToken, map[string]interface{}{
		"application_id": application.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var assigned struct {
		Status           string  `json:"status"`
		AssignedToUserID *string `json:"assigned_to_user_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &assigned))
	assert.Equal(t, "in_progress", assigned.Status)
	require.NotNil(t, assigned.AssignedToUserID)
	assert.Equal(t, freelancer.ID, *assigned.AssignedToUserID)

	// Заявка соперника автоматически отклонена
	var rivalApp models.JobApplication
	err := ts.DB.Where("job_id = ? AND user_id <> ?", job.ID, freelancer.ID).First(&rivalApp).Error
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, rivalApp.Status)

	// Доставить может только назначенный фрилансер
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/deliver", rivalToken, map[string]interface{}{
		"delivery_notes": "Not mine",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/deliver", freelancerToken, map[string]interface{}{
		"delivery_notes":     "Done, see attached",
		"delivery_files_url": "https://files.example.com/landing.zip",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var delivered struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &delivered))
	assert.Equal(t, "delivered", delivered.Status)

	// Завершение: выплата = 1000 * (1 - 0.08) = 920
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/complete", adminToken, map[string]interface{}{
		"client_feedback":   "Great work",
		"freelancer_rating": 5.0,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	var completed struct {
		Job struct {
			Status string `json:"status"`
		} `json:"job"`
		Payment float64 `json:"payment"`
		Message string  `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &completed))
	assert.Equal(t, "completed", completed.Job.Status)
	assert.InDelta(t, 920.0, completed.Payment, 0.001)
	assert.Equal(t, "Job completed successfully", completed.Message)

	// Заработок фрилансера обновлен
	var updatedFreelancer models.User
	require.NoError(t, ts.DB.First(&updatedFreelancer, "id = ?", freelancer.ID).Error)
	assert.InDelta(t, 920.0, updatedFreelancer.TotalEarnings, 0.001)
	assert.Equal(t, 1, updatedFreelancer.CompletedJobs)

	// Уведомление о завершении
	var notification models.Notification
	require.NoError(t, ts.DB.Where("user_id = ? AND type = ?", freelancer.ID, "job_completed").First(&notification).Error)
	assert.Equal(t, fmt.Sprintf("Your job '%s' was completed. Earned: $%.2f", "Build landing page", 920.0), notification.Message)

	// Повторное завершение запрещено
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/complete", adminToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Подача на закрытую работу запрещена
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", rivalToken, map[string]interface{}{
		"proposal": "Too late",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestJobCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	freelancerToken, _ := helpers.CreateAndLoginUser(t, ts, "Freelancer", "freelancer@example.com", "password123", models.UserRoleFreelancer)

	job := helpers.CreateTestJob(t, ts.DB, admin.ID, "Fix bug", 200)
	helpers.CreateTestJob(t, ts.DB, admin.ID, "Write docs", 500)

	// Листинг с поиском
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?search=bug", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var jobs []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Fix bug", jobs[0].Title)

	// Получение по ID
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, freelancerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)

	// Обновление создателем
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, adminToken, map[string]interface{}{
		"budget": 300.0,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var updated struct {
		Budget float64 `json:"budget"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, 300.0, updated.Budget)

	// Чужой фрилансер не может обновлять и удалять
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, freelancerToken, map[string]interface{}{
		"budget": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID, freelancerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Удаление создателем
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestJobCancel(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	freelancerToken, _ := helpers.CreateAndLoginUser(t, ts, "Freelancer", "freelancer@example.com", "password123", models.UserRoleFreelancer)

	job := helpers.CreateTestJob(t, ts.DB, admin.ID, "Doomed job", 100)

	// Отменять может только админ
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", freelancerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var cancelled struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	// Терминальную работу отменить нельзя
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/cancel", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestJobDeliverWrongStatus(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	freelancerToken, freelancer := helpers.CreateAndLoginUser(t, ts, "Freelancer", "freelancer@example.com", "password123", models.UserRoleFreelancer)

	job := helpers.CreateTestJob(t, ts.DB, admin.ID, "Not started", 100)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Update("assigned_to_user_id", freelancer.ID).Error)

	// Работа все еще available, доставка невозможна
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/deliver", freelancerToken, map[string]interface{}{
		"delivery_notes": "Too early",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Завершить из available тоже нельзя
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/complete", adminToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestListMyJobs(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)
	freelancerToken, freelancer := helpers.CreateAndLoginUser(t, ts, "Freelancer", "freelancer@example.com", "password123", models.UserRoleFreelancer)

	assignedJob := helpers.CreateTestJob(t, ts.DB, admin.ID, "Assigned to me", 100)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", assignedJob.ID).
		Updates(map[string]interface{}{"assigned_to_user_id": freelancer.ID, "status": models.JobStatusInProgress}).Error)
	helpers.CreateTestJob(t, ts.DB, admin.ID, "Someone else's", 100)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/my", freelancerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var jobs []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Assigned to me", jobs[0].Title)
}

func TestAvailableJobsListing(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, admin := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)

	cheap := helpers.CreateTestJob(t, ts.DB, admin.ID, "Cheap fix", 100)
	urgent := helpers.CreateTestJob(t, ts.DB, admin.ID, "Urgent rescue", 500)
	taken := helpers.CreateTestJob(t, ts.DB, admin.ID, "Already taken", 900)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", urgent.ID).Update("is_urgent", true).Error)
	require.NoError(t, ts.DB.Model(&models.Job{}).Where("id = ?", taken.ID).Update("status", models.JobStatusInProgress).Error)

	// Витрина открыта без токена и не показывает занятые работы
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/available", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	var jobs []struct {
		ID     string  `json:"id"`
		Title  string  `json:"title"`
		Budget float64 `json:"budget"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 2)

	// Сортировка по бюджету
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/available?sort_by=budget-high", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, urgent.ID, jobs[0].ID)
	assert.Equal(t, cheap.ID, jobs[1].ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/available?sort_by=budget-low", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, cheap.ID, jobs[0].ID)

	// Фильтр срочных
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/available?filter_type=urgent", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Urgent rescue", jobs[0].Title)

	// Поиск по заголовку
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/available?search=rescue", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, urgent.ID, jobs[0].ID)
}
