package models

import "time"

type Table struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_restaurant_table_number;not null" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Número sequencial, único dentro do restaurante.
	Number   int    `gorm:"uniqueIndex:idx_restaurant_table_number;not null" json:"number"`
	Capacity int    `gorm:"default:4;not null" json:"capacity"`
	Status   string `gorm:"size:20;default:'available'" json:"status"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
