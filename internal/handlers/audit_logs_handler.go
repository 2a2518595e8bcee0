package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/httpresp"
	"github.com/nerobarber/booking-api/internal/middleware"
	"github.com/nerobarber/booking-api/internal/models"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

type AuditLogsHandler struct {
	db        *gorm.DB
	bootstrap *ucBarbershop.Bootstrap
}

func NewAuditLogsHandler(db *gorm.DB, bootstrap *ucBarbershop.Bootstrap) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, bootstrap: bootstrap}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
