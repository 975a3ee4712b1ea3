package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Restaurant
// --------------------------------------------------

func (r *ReservationGormRepository) GetRestaurantByID(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	restaurantID uint,
	reservationID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", reservationID, restaurantID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) GetReservationByCode(
	ctx context.Context,
	code string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) ListReservationsForDay(
	ctx context.Context,
	restaurantID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"restaurant_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			restaurantID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Tables / links
// --------------------------------------------------

func (r *ReservationGormRepository) GetTable(
	ctx context.Context,
	restaurantID uint,
	tableID uint,
) (*models.Table, error) {

	var table models.Table
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		First(&table).Error; err != nil {
		return nil, err
	}

	return &table, nil
}

// LinkTable cria o vínculo dentro de uma transação: a verificação de
// existência resolve o caso comum, e o índice único em
// (reservation_id, table_id) segura escritores concorrentes que passaram
// pela verificação ao mesmo tempo.
func (r *ReservationGormRepository) LinkTable(
	ctx context.Context,
	link *models.ReservationTable,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.ReservationTable{}).
			Where(
				"reservation_id = ? AND table_id = ?",
				link.ReservationID, link.TableID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeDuplicateLink)
		}

		return tx.Create(link).Error
	})

	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeDuplicateLink)
	}

	return err
}

func (r *ReservationGormRepository) UnlinkTable(
	ctx context.Context,
	reservationID uint,
	tableID uint,
) error {
	return r.db.WithContext(ctx).
		Where("reservation_id = ? AND table_id = ?", reservationID, tableID).
		Delete(&models.ReservationTable{}).Error
}

func (r *ReservationGormRepository) ListTablesForReservation(
	ctx context.Context,
	reservationID uint,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Joins("JOIN reservation_tables rt ON rt.table_id = tables.id").
		Where("rt.reservation_id = ?", reservationID).
		Order("tables.number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}

	return tables, nil
}

func (r *ReservationGormRepository) ListReservationsForTable(
	ctx context.Context,
	tableID uint,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Joins("JOIN reservation_tables rt ON rt.reservation_id = reservations.id").
		Where("rt.table_id = ?", tableID).
		Order("reservations.scheduled_at ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
