package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentForShop(
	ctx context.Context,
	appointmentID uint,
	barbershopID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// UpdateAppointmentStatus writes the new status only if the row still
// carries the expected previous status. A lost compare-and-set means a
// concurrent transition won and this one is invalid.
func (r *BookingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	appointmentID uint,
	from domain.Status,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"completed_at": ap.CompletedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_transition")
	}

	return nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

// AwardLoyaltyPoints is a single UPDATE expression; concurrent awards for
// the same client serialize at the database and always sum correctly.
func (r *BookingGormRepository) AwardLoyaltyPoints(
	ctx context.Context,
	clientID uuid.UUID,
	points int,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", clientID).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForShop(
	ctx context.Context,
	barbershopID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barbershop_id = ?", barbershopID).
		Order("booking_date ASC").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barbershop").
		Where("client_id = ?", clientID).
		Order("booking_date ASC").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barbershop_id = ? AND booking_date >= ? AND booking_date < ?",
			barbershopID, start, end,
		).
		Order("booking_date ASC").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
