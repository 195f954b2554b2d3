package handlers

import (
	"net/http"

	"kardash_backend/internal/middleware"
	"kardash_backend/internal/services"
	"kardash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AutoApplierHandler struct {
	*BaseHandler
	autoApplierService services.AutoApplierService
}

func NewAutoApplierHandler(base *BaseHandler, autoApplierService services.AutoApplierService) *AutoApplierHandler {
	return &AutoApplierHandler{
		BaseHandler:        base,
		autoApplierService: autoApplierService,
	}
}

func (h *AutoApplierHandler) RegisterRoutes(r *gin.RouterGroup) {
	applier := r.Group("/auto-applier")
	applier.Use(middleware.AuthMiddleware())
	{
		applier.POST("/configure", h.Configure)
		applier.GET("/config", h.GetConfig)
		applier.POST("/start", h.Start)
		applier.POST("/stop", h.Stop)
		applier.GET("/status", h.Status)
		applier.GET("/applications", h.Applications)
		applier.GET("/stats", h.Stats)
		applier.POST("/apply/:job_id", h.Apply)
		applier.GET("/suggestions", h.Suggestions)
	}
}

func (h *AutoApplierHandler) Configure(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var config dto.AutoApplyConfig
	if !h.BindAndValidate_JSON(c, &config) {
		return
	}

	saved, err := h.autoApplierService.Configure(userID, &config)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Auto-applier configuration updated",
		"config":  saved,
	})
}

func (h *AutoApplierHandler) GetConfig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	config, err := h.autoApplierService.GetConfig(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, config)
}

func (h *AutoApplierHandler) Start(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.autoApplierService.Start(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Auto-applier started successfully"})
}

func (h *AutoApplierHandler) Stop(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.autoApplierService.Stop(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Auto-applier stopped successfully"})
}

func (h *AutoApplierHandler) Status(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status, err := h.autoApplierService.Status(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *AutoApplierHandler) Applications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	skip := ParseQueryInt(c, "skip", 0)
	limit := ParseQueryInt(c, "limit", 50)

	applications, err := h.autoApplierService.Applications(userID, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *AutoApplierHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.autoApplierService.Stats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AutoApplierHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.autoApplierService.Apply(userID, c.Param("job_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AutoApplierHandler) Suggestions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	limit := ParseQueryInt(c, "limit", 10)

	suggestions, err := h.autoApplierService.Suggestions(userID, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
