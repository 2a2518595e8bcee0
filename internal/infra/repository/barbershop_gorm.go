package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/models"
	"github.com/nerobarber/booking-api/internal/usecase/barbershop"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

func (r *BarbershopGormRepository) GetBarbershopByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) CreateBarbershop(
	ctx context.Context,
	shop *models.Barbershop,
) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *BarbershopGormRepository) ListBarbershops(
	ctx context.Context,
) ([]models.Barbershop, error) {

	var shops []models.Barbershop
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *BarbershopGormRepository) ListServicesForShop(
	ctx context.Context,
	barbershopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BarbershopGormRepository) ListProductsForShop(
	ctx context.Context,
	barbershopID uint,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *BarbershopGormRepository) CreateProduct(
	ctx context.Context,
	product *models.Product,
) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Compile-time check
var _ barbershop.Repository = (*BarbershopGormRepository)(nil)
