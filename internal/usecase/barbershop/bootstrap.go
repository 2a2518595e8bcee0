// Package barbershop covers shop bootstrap and discovery: a barber
// without a shop row creates one, clients browse the full list.
package barbershop

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/audit"
	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/models"
)

type Repository interface {
	GetBarbershopByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Barbershop, error)
	CreateBarbershop(ctx context.Context, shop *models.Barbershop) error
	ListBarbershops(ctx context.Context) ([]models.Barbershop, error)
	ListServicesForShop(ctx context.Context, barbershopID uint) ([]models.Service, error)
	ListProductsForShop(ctx context.Context, barbershopID uint) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type CreateShopInput struct {
	OwnerID     uuid.UUID
	Name        string
	Address     string
	Description string
	Phone       string
}

type Bootstrap struct {
	repo  Repository
	audit audit.Recorder
}

func NewBootstrap(repo Repository, recorder audit.Recorder) *Bootstrap {
	return &Bootstrap{repo: repo, audit: recorder}
}

// Create binds a new shop to the owner. One shop per owner: a second
// creation is rejected instead of shadowing the first.
func (uc *Bootstrap) Create(
	ctx context.Context,
	in CreateShopInput,
) (*models.Barbershop, error) {

	if existing, err := uc.repo.GetBarbershopByOwner(ctx, in.OwnerID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("barbershop_already_exists")
	}

	shop := &models.Barbershop{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Phone:       in.Phone,
	}

	if err := uc.repo.CreateBarbershop(ctx, shop); err != nil {
		// The check above races with a concurrent creation; the unique
		// index on owner_id is the backstop and still means "already owns".
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness("barbershop_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		ActorID:      &in.OwnerID,
		Action:       "barbershop_created",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	return shop, nil
}

// Mine fetches the owner's shop; the not-found error is the client's
// signal to render the creation form.
func (uc *Bootstrap) Mine(
	ctx context.Context,
	ownerID uuid.UUID,
) (*models.Barbershop, error) {

	shop, err := uc.repo.GetBarbershopByOwner(ctx, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	return shop, nil
}

func (uc *Bootstrap) List(ctx context.Context) ([]models.Barbershop, error) {
	return uc.repo.ListBarbershops(ctx)
}

func (uc *Bootstrap) Services(
	ctx context.Context,
	barbershopID uint,
) ([]models.Service, error) {
	return uc.repo.ListServicesForShop(ctx, barbershopID)
}

// --------- Retail products ---------

// Fallback artwork for products registered without an image.
const defaultProductImage = "https://images.unsplash.com/photo-1621607512214-68297480165e?auto=format&fit=crop&q=80&w=1000"

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

func (uc *Bootstrap) Products(
	ctx context.Context,
	barbershopID uint,
) ([]models.Product, error) {
	return uc.repo.ListProductsForShop(ctx, barbershopID)
}

// AddProduct registers a retail item in the owner's shop.
func (uc *Bootstrap) AddProduct(
	ctx context.Context,
	ownerID uuid.UUID,
	in CreateProductInput,
) (*models.Product, error) {

	shop, err := uc.repo.GetBarbershopByOwner(ctx, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = defaultProductImage
	}

	product := &models.Product{
		BarbershopID: shop.ID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     imageURL,
		Active:       true,
	}

	if err := uc.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		ActorID:      &ownerID,
		Action:       "product_created",
		Entity:       "product",
		EntityID:     &product.ID,
	})

	return product, nil
}
