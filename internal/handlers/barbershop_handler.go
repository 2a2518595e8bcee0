package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/httpresp"
	"github.com/nerobarber/booking-api/internal/middleware"
	"github.com/nerobarber/booking-api/internal/models"
	"github.com/nerobarber/booking-api/internal/storage"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

const maxLogoUploadBytes = 5 << 20

type BarbershopHandler struct {
	db        *gorm.DB
	bootstrap *ucBarbershop.Bootstrap
	logos     *storage.LogoStore
}

func NewBarbershopHandler(
	db *gorm.DB,
	bootstrap *ucBarbershop.Bootstrap,
	logos *storage.LogoStore,
) *BarbershopHandler {
	return &BarbershopHandler{
		db:        db,
		bootstrap: bootstrap,
		logos:     logos,
	}
}

// --------- Public (client browsing) ---------

func (h *BarbershopHandler) List(c *gin.Context) {
	shops, err := h.bootstrap.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Could not list barbershops.")
		return
	}

	httpresp.List(c, shops)
}

func (h *BarbershopHandler) ListServices(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop id.")
		return
	}

	services, err := h.bootstrap.Services(c.Request.Context(), uint(shopID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *BarbershopHandler) ListProducts(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Invalid barbershop id.")
		return
	}

	products, err := h.bootstrap.Products(c.Request.Context(), uint(shopID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

// --------- Owner (barber bootstrap) ---------

type CreateBarbershopRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
}

func (h *BarbershopHandler) GetMine(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		// The not-found signal tells the dashboard to show the creation
		// form instead of the agenda.
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	shop, err := h.bootstrap.Create(c.Request.Context(), ucBarbershop.CreateShopInput{
		OwnerID:     middleware.UserID(c),
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Phone:       req.Phone,
	})
	if err != nil {
		if httperr.IsBusiness(err, "barbershop_already_exists") {
			httperr.Conflict(c, "barbershop_already_exists", "This account already owns a barbershop.")
			return
		}
		httperr.Internal(c, "failed_to_create_barbershop", "Could not create the barbershop.")
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// --------- Logo upload ---------

func (h *BarbershopHandler) UploadLogo(c *gin.Context) {
	if h.logos == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "logo_storage_disabled", "Logo storage is not configured.")
		return
	}

	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	file, err := c.FormFile("logo")
	if err != nil || file.Size > maxLogoUploadBytes {
		httperr.BadRequest(c, "invalid_logo", "Send a logo image up to 5MB as multipart field 'logo'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_logo", "Could not read the upload.")
		return
	}
	defer src.Close()

	url, err := h.logos.UploadLogo(c.Request.Context(), shop.ID, src)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "The upload is not a decodable image.")
			return
		}
		httperr.Internal(c, "failed_to_store_logo", "Could not store the logo.")
		return
	}

	if err := h.db.Model(&models.Barbershop{}).
		Where("id = ?", shop.ID).
		Update("logo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_logo_url", "Logo stored but the URL could not be saved.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
