package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/models"
	"github.com/nerobarber/booking-api/internal/usecase/profile"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) GetProfile(
	ctx context.Context,
	id uuid.UUID,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Compile-time check
var _ profile.Reader = (*ProfileGormRepository)(nil)
