package models

import (
	"time"

	"github.com/google/uuid"
)

type Barbershop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	Owner   Profile   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:255" json:"description"`
	Phone       string `gorm:"size:20" json:"phone"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`

	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
