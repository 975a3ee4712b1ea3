package restaurant

import (
	"context"

	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

type Repository interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	// -------- Tables (provisioning) --------
	ListTableNumbers(
		ctx context.Context,
		restaurantID uint,
	) ([]int, error)

	// CreateTables persiste o lote inteiro em uma única transação.
	CreateTables(
		ctx context.Context,
		tables []*models.Table,
	) error
}
