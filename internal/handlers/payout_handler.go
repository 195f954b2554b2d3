package handlers

import (
	"net/http"

	"kardash_backend/internal/middleware"
	"kardash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayoutHandler отдает справочные данные по выводу средств.
// Реального платежного контура пока нет, методы захардкожены.
type PayoutHandler struct {
	*BaseHandler
}

func NewPayoutHandler(base *BaseHandler) *PayoutHandler {
	return &PayoutHandler{BaseHandler: base}
}

func (h *PayoutHandler) RegisterRoutes(r *gin.RouterGroup) {
	payouts := r.Group("/payouts")
	payouts.Use(middleware.AuthMiddleware())
	{
		payouts.GET("/methods", h.GetMethods)
		payouts.POST("/request", h.RequestPayout)
		payouts.GET("/history", h.GetHistory)
	}
}

func (h *PayoutHandler) GetMethods(c *gin.Context) {
	methods := []dto.PayoutMethodDTO{
		{
			ID:      "1",
			Name:    "Bitcoin Wallet",
			Type:    "bitcoin",
			Address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		},
		{
			ID:      "2",
			Name:    "Ethereum Wallet",
			Type:    "ethereum",
			Address: "0x742d35Cc6634C0532925a3b8D4C9db96C4b4d8b6",
		},
	}

	c.JSON(http.StatusOK, methods)
}

func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	var req dto.PayoutRequestDTO
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, dto.PayoutRequestResponse{
		Message:   "Payout request submitted successfully",
		RequestID: uuid.NewString(),
	})
}

func (h *PayoutHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{})
}
