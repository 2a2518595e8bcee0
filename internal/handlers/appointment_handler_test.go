package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nerobarber/booking-api/internal/audit"
	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/lock"
	"github.com/nerobarber/booking-api/internal/middleware"
	"github.com/nerobarber/booking-api/internal/models"
	ucAppointment "github.com/nerobarber/booking-api/internal/usecase/appointment"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

// ---------------------------------------------------------------------
// stubs
// ---------------------------------------------------------------------

type noopAudit struct{}

func (noopAudit) Dispatch(_ audit.Event) {}

type stubBookingRepo struct {
	shop        *models.Barbershop
	appointment *models.Appointment
	agenda      []models.Appointment
	awardErr    error
	awards      int
}

func (s *stubBookingRepo) GetBarbershopByID(_ context.Context, _ uint) (*models.Barbershop, error) {
	return s.shop, nil
}

func (s *stubBookingRepo) GetService(_ context.Context, _ uint, _ uint) (*models.Service, error) {
	return nil, errors.New("not used")
}

func (s *stubBookingRepo) CreateAppointment(_ context.Context, _ *models.Appointment) error {
	return errors.New("not used")
}

func (s *stubBookingRepo) GetAppointmentForShop(_ context.Context, id uint, _ uint) (*models.Appointment, error) {
	if s.appointment == nil || s.appointment.ID != id {
		return nil, errors.New("record not found")
	}
	cp := *s.appointment
	return &cp, nil
}

func (s *stubBookingRepo) UpdateAppointmentStatus(_ context.Context, _ uint, _ domain.Status, ap *models.Appointment) error {
	s.appointment.Status = ap.Status
	s.appointment.ConfirmedAt = ap.ConfirmedAt
	s.appointment.CompletedAt = ap.CompletedAt
	return nil
}

func (s *stubBookingRepo) AwardLoyaltyPoints(_ context.Context, _ uuid.UUID, _ int) error {
	if s.awardErr != nil {
		return s.awardErr
	}
	s.awards++
	return nil
}

func (s *stubBookingRepo) ListAppointmentsForShop(_ context.Context, _ uint) ([]models.Appointment, error) {
	return s.agenda, nil
}

func (s *stubBookingRepo) ListAppointmentsForClient(_ context.Context, _ uuid.UUID) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubBookingRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, start time.Time, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.agenda {
		if !ap.BookingDate.Before(start) && ap.BookingDate.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubBookingRepo)(nil)

type stubShopRepo struct {
	shop *models.Barbershop
}

func (s *stubShopRepo) GetBarbershopByOwner(_ context.Context, _ uuid.UUID) (*models.Barbershop, error) {
	if s.shop == nil {
		return nil, errors.New("record not found")
	}
	return s.shop, nil
}

func (s *stubShopRepo) CreateBarbershop(_ context.Context, _ *models.Barbershop) error {
	return errors.New("not used")
}

func (s *stubShopRepo) ListBarbershops(_ context.Context) ([]models.Barbershop, error) {
	return nil, nil
}

func (s *stubShopRepo) ListServicesForShop(_ context.Context, _ uint) ([]models.Service, error) {
	return nil, nil
}

func (s *stubShopRepo) ListProductsForShop(_ context.Context, _ uint) ([]models.Product, error) {
	return nil, nil
}

func (s *stubShopRepo) CreateProduct(_ context.Context, _ *models.Product) error {
	return errors.New("not used")
}

var _ ucBarbershop.Repository = (*stubShopRepo)(nil)

// ---------------------------------------------------------------------
// fixture
// ---------------------------------------------------------------------

func newWorkflowRouter(t *testing.T, bookingRepo *stubBookingRepo, shopRepo *stubShopRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bootstrap := ucBarbershop.NewBootstrap(shopRepo, noopAudit{})
	advanceUC := ucAppointment.NewAdvanceStatus(bookingRepo, lock.NewMemory(), noopAudit{})
	listUC := ucAppointment.NewListAppointments(bookingRepo)
	summaryUC := ucAppointment.NewSummarize(bookingRepo)

	h := NewAppointmentHandler(bootstrap, advanceUC, listUC, summaryUC)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
	})
	r.PATCH("/me/appointments/:id/confirm", h.Confirm)
	r.PATCH("/me/appointments/:id/complete", h.Complete)
	r.GET("/me/appointments", h.List)
	return r
}

func doPatch(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// ---------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------

func TestConfirmEndpoint(t *testing.T) {
	bookingRepo := &stubBookingRepo{
		shop: &models.Barbershop{ID: 1},
		appointment: &models.Appointment{
			ID: 7, ClientID: uuid.New(), BarbershopID: 1, Status: "pending",
		},
	}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := doPatch(r, "/me/appointments/7/confirm")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "confirmed", resp.Status)
	require.Equal(t, 0, bookingRepo.awards)
}

func TestCompleteEndpointAwardsPoints(t *testing.T) {
	bookingRepo := &stubBookingRepo{
		shop: &models.Barbershop{ID: 1},
		appointment: &models.Appointment{
			ID: 7, ClientID: uuid.New(), BarbershopID: 1, Status: "confirmed",
		},
	}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := doPatch(r, "/me/appointments/7/complete")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, bookingRepo.awards)
	require.Equal(t, "completed", bookingRepo.appointment.Status)
}

func TestCompleteEndpointRejectsPending(t *testing.T) {
	bookingRepo := &stubBookingRepo{
		shop: &models.Barbershop{ID: 1},
		appointment: &models.Appointment{
			ID: 7, ClientID: uuid.New(), BarbershopID: 1, Status: "pending",
		},
	}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := doPatch(r, "/me/appointments/7/complete")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_transition")
	require.Equal(t, "pending", bookingRepo.appointment.Status)
}

func TestCompleteEndpointSurfacesAwardFailure(t *testing.T) {
	bookingRepo := &stubBookingRepo{
		shop: &models.Barbershop{ID: 1},
		appointment: &models.Appointment{
			ID: 7, ClientID: uuid.New(), BarbershopID: 1, Status: "confirmed",
		},
		awardErr: errors.New("profiles unavailable"),
	}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := doPatch(r, "/me/appointments/7/complete")

	// The transition itself succeeded; the response carries the warning.
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "loyalty_award_failed")
	require.Equal(t, "completed", bookingRepo.appointment.Status)
}

func TestWorkflowWithoutShopIsNotFound(t *testing.T) {
	r := newWorkflowRouter(t, &stubBookingRepo{}, &stubShopRepo{})

	w := doPatch(r, "/me/appointments/7/confirm")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "barbershop_not_found")
}

func TestUnknownAppointmentIsNotFound(t *testing.T) {
	bookingRepo := &stubBookingRepo{shop: &models.Barbershop{ID: 1}}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := doPatch(r, "/me/appointments/99/confirm")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "appointment_not_found")
}

func TestAgendaDateFilter(t *testing.T) {
	bookingRepo := &stubBookingRepo{
		shop: &models.Barbershop{ID: 1, Timezone: "UTC"},
		agenda: []models.Appointment{
			{ID: 1, BarbershopID: 1, Status: "pending", BookingDate: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)},
			{ID: 2, BarbershopID: 1, Status: "pending", BookingDate: time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)},
		},
	}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1, Timezone: "UTC"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me/appointments?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []ucAppointment.AgendaEntry `json:"data"`
		Total int                         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, uint(1), resp.Data[0].ID)
}

func TestAgendaDateFilterRejectsMalformedDate(t *testing.T) {
	bookingRepo := &stubBookingRepo{shop: &models.Barbershop{ID: 1}}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me/appointments?date=01-09-2026", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_date")
}

func TestAgendaListEmptyState(t *testing.T) {
	bookingRepo := &stubBookingRepo{shop: &models.Barbershop{ID: 1}}
	r := newWorkflowRouter(t, bookingRepo, &stubShopRepo{shop: &models.Barbershop{ID: 1}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me/appointments", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []ucAppointment.AgendaEntry `json:"data"`
		Total int                         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	require.Equal(t, 0, resp.Total)
}
