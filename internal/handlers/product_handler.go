package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/httpresp"
	"github.com/nerobarber/booking-api/internal/middleware"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

// ProductHandler manages the shop's retail counter (the "New Product"
// form on the barber dashboard).
type ProductHandler struct {
	bootstrap *ucBarbershop.Bootstrap
}

func NewProductHandler(bootstrap *ucBarbershop.Bootstrap) *ProductHandler {
	return &ProductHandler{bootstrap: bootstrap}
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string  `json:"image_url"`
}

func (h *ProductHandler) List(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	products, err := h.bootstrap.Products(c.Request.Context(), shop.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product, err := h.bootstrap.AddProduct(c.Request.Context(), middleware.UserID(c), ucBarbershop.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if httperr.IsBusiness(err, "barbershop_not_found") {
			httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
			return
		}
		httperr.Internal(c, "failed_to_create_product", "Could not create the product.")
		return
	}

	c.JSON(http.StatusCreated, product)
}
