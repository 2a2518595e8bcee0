package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nerobarber/booking-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForShop(
		ctx context.Context,
		appointmentID uint,
		barbershopID uint,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus persists the transition as a compare-and-set
	// on the previous status. It must fail when no row matches, so a
	// concurrent writer that got there first makes this call a no-op error
	// instead of a silent overwrite.
	UpdateAppointmentStatus(
		ctx context.Context,
		appointmentID uint,
		from Status,
		ap *models.Appointment,
	) error

	// -------- Loyalty --------
	// AwardLoyaltyPoints increments the client's balance in a single
	// update expression at the storage boundary.
	AwardLoyaltyPoints(
		ctx context.Context,
		clientID uuid.UUID,
		points int,
	) error

	// -------- Listings --------
	ListAppointmentsForShop(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uuid.UUID,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
