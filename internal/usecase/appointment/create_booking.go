package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nerobarber/booking-api/internal/audit"
	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/models"
	"github.com/nerobarber/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID     uuid.UUID
	BarbershopID uint
	ServiceID    uint

	// Local wall-clock in the shop's timezone, "2006-01-02T15:04".
	BookingDate string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateBooking(
	repo domain.Repository,
	recorder audit.Recorder,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: recorder,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	when, err := time.ParseInLocation(
		"2006-01-02T15:04",
		in.BookingDate,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_booking_date")
	}

	if !when.After(timezone.NowIn(shop.Timezone)) {
		return nil, httperr.ErrBusiness("booking_date_in_past")
	}

	ap := &models.Appointment{
		ClientID:     in.ClientID,
		BarbershopID: shop.ID,
		ServiceID:    svc.ID,
		BookingDate:  when,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		ActorID:      &in.ClientID,
		Action:       "appointment_requested",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
