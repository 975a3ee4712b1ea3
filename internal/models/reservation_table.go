package models

import "time"

// ReservationTable vincula uma reserva a uma mesa física. O par
// (reservation_id, table_id) é único; uma reserva pode ocupar várias mesas.
type ReservationTable struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"uniqueIndex:idx_reservation_table;not null" json:"reservation_id"`
	Reservation   Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TableID uint  `gorm:"uniqueIndex:idx_reservation_table;not null" json:"table_id"`
	Table   Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
