package handlers

import (
	"net/http"

	"kardash_backend/internal/middleware"
	"kardash_backend/internal/models"
	"kardash_backend/internal/services"
	"kardash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BotAccountHandler struct {
	*BaseHandler
	accountService services.BotAccountService
}

func NewBotAccountHandler(base *BaseHandler, accountService services.BotAccountService) *BotAccountHandler {
	return &BotAccountHandler{
		BaseHandler:    base,
		accountService: accountService,
	}
}

// Аккаунты на внешних платформах администрирует только админ.
func (h *BotAccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/bot-accounts")
	accounts.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		accounts.GET("", h.List)
		accounts.POST("", h.Create)
		accounts.GET("/:id", h.GetByID)
		accounts.PUT("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)

		accounts.POST("/:id/activate", h.Activate)
		accounts.POST("/:id/pause", h.Pause)
		accounts.POST("/:id/disable", h.Disable)
		accounts.GET("/stats/overview", h.GetOverview)
	}
}

func (h *BotAccountHandler) Create(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBotAccountRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.accountService.Create(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *BotAccountHandler) List(c *gin.Context) {
	var query dto.ListBotAccountsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	accounts, err := h.accountService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (h *BotAccountHandler) GetByID(c *gin.Context) {
	account, err := h.accountService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BotAccountHandler) Update(c *gin.Context) {
	var req dto.UpdateBotAccountRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.accountService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BotAccountHandler) Delete(c *gin.Context) {
	if err := h.accountService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bot account deleted successfully"})
}

func (h *BotAccountHandler) Pause(c *gin.Context) {
	account, err := h.accountService.Pause(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BotAccountHandler) Activate(c *gin.Context) {
	account, err := h.accountService.Activate(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BotAccountHandler) Disable(c *gin.Context) {
	account, err := h.accountService.Disable(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BotAccountHandler) GetOverview(c *gin.Context) {
	overview, err := h.accountService.GetOverview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
