package handlers

import (
	"net/http"

	"kardash_backend/internal/middleware"
	"kardash_backend/internal/models"
	"kardash_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/dashboard")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/overview", h.Overview)
		admin.GET("/jobs/stats", h.JobStats)
		admin.GET("/users/stats", h.UserStats)
		admin.GET("/bots/stats", h.BotStats)
		admin.GET("/recent-activity", h.RecentActivity)
		admin.GET("/earnings/overview", h.EarningsOverview)
		admin.GET("/earnings/chart", h.EarningsChart)
	}

	freelancer := r.Group("/dashboard")
	freelancer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleFreelancer))
	{
		freelancer.GET("/freelancer/stats", h.FreelancerStats)
	}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.Overview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) JobStats(c *gin.Context) {
	stats, err := h.dashboardService.JobStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) UserStats(c *gin.Context) {
	stats, err := h.dashboardService.UserStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) BotStats(c *gin.Context) {
	stats, err := h.dashboardService.BotStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 10)

	activities, err := h.dashboardService.RecentActivity(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (h *DashboardHandler) EarningsOverview(c *gin.Context) {
	overview, err := h.dashboardService.EarningsOverview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) EarningsChart(c *gin.Context) {
	chart, err := h.dashboardService.EarningsChart(c.DefaultQuery("period", "monthly"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

func (h *DashboardHandler) FreelancerStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.FreelancerStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
