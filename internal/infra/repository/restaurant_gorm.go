package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/restaurant"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

func (r *RestaurantGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) ListTableNumbers(
	ctx context.Context,
	restaurantID uint,
) ([]int, error) {

	var numbers []int
	if err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("restaurant_id = ?", restaurantID).
		Order("number ASC").
		Pluck("number", &numbers).Error; err != nil {
		return nil, err
	}

	return numbers, nil
}

// CreateTables grava o lote em uma transação: ou todas as mesas entram,
// ou nenhuma.
func (r *RestaurantGormRepository) CreateTables(
	ctx context.Context,
	tables []*models.Table,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tables).Error
	})
}

// Compile-time check
var _ domain.Repository = (*RestaurantGormRepository)(nil)
