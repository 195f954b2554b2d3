package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler - liveness-проверки. Регистрируется на корне, вне /api/v1.
type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Freelance Bot Platform API"})
}

// Health проверяет и доступность базы.
func (h *HealthHandler) Health(c *gin.Context) {
	db := h.GetDB(c)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}
