package models

import "time"

type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbershop_id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Price           float64 `gorm:"not null" json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
