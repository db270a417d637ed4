package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary      Liveness and database check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} ErrorResponse
// @Router       /healthz [get]
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		internalError(c, err)
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
