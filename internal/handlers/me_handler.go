package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/httpresp"
	"github.com/nerobarber/booking-api/internal/middleware"
	ucAppointment "github.com/nerobarber/booking-api/internal/usecase/appointment"
	"github.com/nerobarber/booking-api/internal/usecase/profile"
)

// MeHandler serves the signed-in identity: profile with loyalty balance
// and, for clients, their bookings.
type MeHandler struct {
	resolver *profile.Resolver
	createUC *ucAppointment.CreateBooking
	listUC   *ucAppointment.ListAppointments
}

func NewMeHandler(
	resolver *profile.Resolver,
	createUC *ucAppointment.CreateBooking,
	listUC *ucAppointment.ListAppointments,
) *MeHandler {
	return &MeHandler{
		resolver: resolver,
		createUC: createUC,
		listUC:   listUC,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	p, err := h.resolver.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profilePayload(p),
		"role":    h.resolver.ResolveRole(c.Request.Context(), userID),
	})
}

// --------- Bookings (client side) ---------

type CreateBookingRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	BookingDate  string `json:"booking_date" binding:"required"`
}

func (h *MeHandler) CreateBooking(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		ClientID:     userID,
		BarbershopID: req.BarbershopID,
		ServiceID:    req.ServiceID,
		BookingDate:  req.BookingDate,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not create the booking.")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *MeHandler) ListBookings(c *gin.Context) {
	userID := middleware.UserID(c)

	bookings, err := h.listUC.ForClient(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}
