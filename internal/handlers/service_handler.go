package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/httpresp"
	"github.com/nerobarber/booking-api/internal/middleware"
	"github.com/nerobarber/booking-api/internal/models"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

// ServiceHandler manages the shop's catalogue (the "New Service" form on
// the barber dashboard).
type ServiceHandler struct {
	db        *gorm.DB
	bootstrap *ucBarbershop.Bootstrap
}

func NewServiceHandler(db *gorm.DB, bootstrap *ucBarbershop.Bootstrap) *ServiceHandler {
	return &ServiceHandler{db: db, bootstrap: bootstrap}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"gte=0"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		BarbershopID:    shop.ID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}
