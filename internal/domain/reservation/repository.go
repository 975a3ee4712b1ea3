package reservation

import (
	"context"
	"time"

	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

type Repository interface {
	// -------- Restaurant --------
	GetRestaurantByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	// -------- Reservation --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		restaurantID uint,
		reservationID uint,
	) (*models.Reservation, error)

	GetReservationByCode(
		ctx context.Context,
		code string,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservationsForDay(
		ctx context.Context,
		restaurantID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	// -------- Tables / links --------
	GetTable(
		ctx context.Context,
		restaurantID uint,
		tableID uint,
	) (*models.Table, error)

	LinkTable(
		ctx context.Context,
		link *models.ReservationTable,
	) error

	UnlinkTable(
		ctx context.Context,
		reservationID uint,
		tableID uint,
	) error

	ListTablesForReservation(
		ctx context.Context,
		reservationID uint,
	) ([]models.Table, error)

	ListReservationsForTable(
		ctx context.Context,
		tableID uint,
	) ([]models.Reservation, error)
}
