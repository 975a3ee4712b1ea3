package models

import "time"

type Reservation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	RestaurantID uint       `gorm:"not null" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Reservas anônimas não têm usuário vinculado.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date string `gorm:"size:10;not null" json:"date"` // 2006-01-02
	Time string `gorm:"size:5;not null" json:"time"`  // 15:04

	// Data + hora combinadas no timezone do restaurante.
	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`

	PartySize int    `gorm:"not null" json:"party_size"`
	Status    string `gorm:"size:20;default:'pending'" json:"status"`

	ContactName  string `gorm:"size:150;not null" json:"contact_name"`
	ContactPhone string `gorm:"size:20;not null" json:"contact_phone"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`
	Notes        string `gorm:"type:text" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
