package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/models"
	"github.com/nerobarber/booking-api/internal/timezone"
)

// Agenda row for the barber dashboard: appointment joined with the
// booking client and the requested service.
type AgendaEntry struct {
	ID          uint      `json:"id"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`

	ClientID    uuid.UUID `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`

	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
}

type ClientBooking struct {
	ID          uint      `json:"id"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`

	BarbershopName string  `json:"barbershop_name"`
	ServiceName    string  `json:"service_name"`
	ServicePrice   float64 `json:"service_price"`
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ForShop returns the shop agenda ordered by booking date ascending.
func (uc *ListAppointments) ForShop(
	ctx context.Context,
	barbershopID uint,
) ([]AgendaEntry, error) {

	aps, err := uc.repo.ListAppointmentsForShop(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	return toAgenda(aps), nil
}

// ForShopOn narrows the agenda to a single day, "2006-01-02" in the
// shop's timezone.
func (uc *ListAppointments) ForShopOn(
	ctx context.Context,
	barbershopID uint,
	day string,
	tz string,
) ([]AgendaEntry, error) {

	start, err := time.ParseInLocation("2006-01-02", day, timezone.Location(tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	end := start.AddDate(0, 0, 1)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, barbershopID, start, end)
	if err != nil {
		return nil, err
	}

	return toAgenda(aps), nil
}

func toAgenda(aps []models.Appointment) []AgendaEntry {
	out := make([]AgendaEntry, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AgendaEntry{
			ID:           ap.ID,
			BookingDate:  ap.BookingDate,
			Status:       ap.Status,
			ClientID:     ap.ClientID,
			ClientName:   ap.Client.FullName,
			ClientPhone:  ap.Client.Phone,
			ServiceName:  ap.Service.Name,
			ServicePrice: ap.Service.Price,
		})
	}

	return out
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]ClientBooking, error) {

	aps, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]ClientBooking, 0, len(aps))
	for _, ap := range aps {
		out = append(out, ClientBooking{
			ID:             ap.ID,
			BookingDate:    ap.BookingDate,
			Status:         ap.Status,
			BarbershopName: ap.Barbershop.Name,
			ServiceName:    ap.Service.Name,
			ServicePrice:   ap.Service.Price,
		})
	}

	return out, nil
}
