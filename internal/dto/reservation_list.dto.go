package dto

import "time"

type ReservationListDTO struct {
	ID             uint      `json:"id"`
	Code           string    `json:"code"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Status         string    `json:"status"`
	PartySize      int       `json:"party_size"`
	RequiredTables int       `json:"required_tables"`
	ContactName    string    `json:"contact_name"`
	ContactPhone   string    `json:"contact_phone"`
	CanCancel      bool      `json:"can_cancel"`
}
