package models

import "time"

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:2" json:"state"`
	Zip         string `gorm:"size:10" json:"zip"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Quantidade alvo de mesas; o provisionamento cria apenas as que faltam.
	TableCount int `gorm:"default:10" json:"table_count"`

	Timezone string `gorm:"size:50" json:"timezone"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
