package handlers

import (
	"net/http"

	"kardash_backend/internal/middleware"
	"kardash_backend/internal/models"
	"kardash_backend/internal/services"
	"kardash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BotHandler struct {
	*BaseHandler
	botService services.BotService
}

func NewBotHandler(base *BaseHandler, botService services.BotService) *BotHandler {
	return &BotHandler{
		BaseHandler: base,
		botService:  botService,
	}
}

// Управление ботами доступно только админам.
func (h *BotHandler) RegisterRoutes(r *gin.RouterGroup) {
	bots := r.Group("/bots")
	bots.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		bots.GET("", h.List)
		bots.POST("", h.Create)
		bots.GET("/:id", h.GetByID)
		bots.PUT("/:id", h.Update)
		bots.DELETE("/:id", h.Delete)

		bots.POST("/:id/start", h.Start)
		bots.POST("/:id/stop", h.Stop)
		bots.GET("/:id/activities", h.GetActivities)
		bots.GET("/stats/overview", h.GetOverview)
	}
}

func (h *BotHandler) Create(c *gin.Context) {
	var req dto.CreateBotRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bot, err := h.botService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bot)
}

func (h *BotHandler) List(c *gin.Context) {
	var query dto.ListBotsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	bots, err := h.botService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bots)
}

func (h *BotHandler) GetByID(c *gin.Context) {
	bot, err := h.botService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bot)
}

func (h *BotHandler) Update(c *gin.Context) {
	var req dto.UpdateBotRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bot, err := h.botService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bot)
}

func (h *BotHandler) Delete(c *gin.Context) {
	if err := h.botService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bot deleted successfully"})
}

func (h *BotHandler) Start(c *gin.Context) {
	bot, err := h.botService.Start(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bot)
}

func (h *BotHandler) Stop(c *gin.Context) {
	bot, err := h.botService.Stop(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bot)
}

func (h *BotHandler) GetActivities(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)

	activities, err := h.botService.GetActivities(c.Param("id"), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (h *BotHandler) GetOverview(c *gin.Context) {
	overview, err := h.botService.GetOverview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
