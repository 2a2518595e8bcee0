package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/httpresp"
	"github.com/nerobarber/booking-api/internal/middleware"
	ucAppointment "github.com/nerobarber/booking-api/internal/usecase/appointment"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bootstrap *ucBarbershop.Bootstrap
	advanceUC *ucAppointment.AdvanceStatus
	listUC    *ucAppointment.ListAppointments
	summaryUC *ucAppointment.Summarize
}

func NewAppointmentHandler(
	bootstrap *ucBarbershop.Bootstrap,
	advanceUC *ucAppointment.AdvanceStatus,
	listUC *ucAppointment.ListAppointments,
	summaryUC *ucAppointment.Summarize,
) *AppointmentHandler {
	return &AppointmentHandler{
		bootstrap: bootstrap,
		advanceUC: advanceUC,
		listUC:    listUC,
		summaryUC: summaryUC,
	}
}

// ======================================================
// AGENDA
// ======================================================

// List serves the full agenda, or one day of it when ?date=2006-01-02
// is given (interpreted in the shop's timezone).
func (h *AppointmentHandler) List(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	var agenda []ucAppointment.AgendaEntry
	if day := c.Query("date"); day != "" {
		agenda, err = h.listUC.ForShopOn(c.Request.Context(), shop.ID, day, shop.Timezone)
	} else {
		agenda, err = h.listUC.ForShop(c.Request.Context(), shop.ID)
	}
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Use YYYY-MM-DD for the date filter.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, agenda)
}

func (h *AppointmentHandler) Summary(c *gin.Context) {
	shop, err := h.bootstrap.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	sum, err := h.summaryUC.Execute(c.Request.Context(), shop.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_summarize", "Could not build the dashboard summary.")
		return
	}

	httpresp.OK(c, sum)
}

// ======================================================
// STATUS WORKFLOW
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.advance(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.advance(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) advance(c *gin.Context, target domain.Status) {
	userID := middleware.UserID(c)

	shop, err := h.bootstrap.Mine(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "No barbershop registered for this account.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.advanceUC.Execute(c.Request.Context(), shop.ID, userID, uint(id), target)

	// Partial failure: the transition committed but the points credit did
	// not. Surface it without pretending the status change failed.
	if errors.Is(err, ucAppointment.ErrLoyaltyAward) {
		c.JSON(http.StatusOK, gin.H{
			"appointment": ap,
			"warning":     "loyalty_award_failed",
		})
		return
	}

	if err != nil {
		switch code, _ := httperr.BusinessCode(err); code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Appointment not found.")
		case "invalid_transition", "invalid_status":
			httperr.BadRequest(c, code, "The appointment cannot move to this status.")
		case "transition_in_progress":
			httperr.Conflict(c, code, "Another transition for this appointment is in flight.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Could not update the appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}
