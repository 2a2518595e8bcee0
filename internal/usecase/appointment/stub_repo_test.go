package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nerobarber/booking-api/internal/audit"
	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/models"
)

var errSomething = errors.New("storage failure")

// stubRepo implements domain.Repository and records every write so the
// tests can assert exactly what reached the storage boundary.
type stubRepo struct {
	shop    *models.Barbershop
	shopErr error

	service    *models.Service
	serviceErr error

	appointment *models.Appointment
	getErr      error

	statusWrites []statusWrite
	updateErr    error

	awards   []award
	awardErr error

	created   []*models.Appointment
	createErr error

	shopList []models.Appointment
	listErr  error
}

type statusWrite struct {
	id   uint
	from domain.Status
	to   string
}

type award struct {
	clientID uuid.UUID
	points   int
}

func (s *stubRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if s.shopErr != nil {
		return nil, s.shopErr
	}
	return s.shop, nil
}

func (s *stubRepo) GetService(_ context.Context, _ uint, _ uint) (*models.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return s.service, nil
}

func (s *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if s.createErr != nil {
		return s.createErr
	}
	ap.ID = uint(len(s.created) + 1)
	s.created = append(s.created, ap)
	return nil
}

func (s *stubRepo) GetAppointmentForShop(_ context.Context, _ uint, _ uint) (*models.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	// Copy, so the use case mutating the result does not silently change
	// the "stored" row before the status write happens.
	cp := *s.appointment
	return &cp, nil
}

func (s *stubRepo) UpdateAppointmentStatus(_ context.Context, id uint, from domain.Status, ap *models.Appointment) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.statusWrites = append(s.statusWrites, statusWrite{id: id, from: from, to: ap.Status})
	s.appointment.Status = ap.Status
	s.appointment.ConfirmedAt = ap.ConfirmedAt
	s.appointment.CompletedAt = ap.CompletedAt
	return nil
}

func (s *stubRepo) AwardLoyaltyPoints(_ context.Context, clientID uuid.UUID, points int) error {
	if s.awardErr != nil {
		return s.awardErr
	}
	s.awards = append(s.awards, award{clientID: clientID, points: points})
	return nil
}

func (s *stubRepo) ListAppointmentsForShop(_ context.Context, _ uint) ([]models.Appointment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.shopList, nil
}

func (s *stubRepo) ListAppointmentsForClient(_ context.Context, _ uuid.UUID) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, start time.Time, end time.Time) ([]models.Appointment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Appointment
	for _, ap := range s.shopList {
		if !ap.BookingDate.Before(start) && ap.BookingDate.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubRepo)(nil)

// captureAudit records dispatched events in order.
type captureAudit struct {
	events []audit.Event
}

func (c *captureAudit) Dispatch(ev audit.Event) {
	c.events = append(c.events, ev)
}

func (c *captureAudit) actions() []string {
	out := make([]string, 0, len(c.events))
	for _, ev := range c.events {
		out = append(out, ev.Action)
	}
	return out
}
