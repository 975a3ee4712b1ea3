package reservation

import (
	"context"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
	"github.com/ReserveAquiServices/api-reservas/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	restaurantID uint,
	reservationID uint,
	actorID *uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	return uc.cancel(ctx, res, actorID)
}

// ExecuteByCode cancela pela chave de confirmação da reserva. É o caminho
// do cliente anônimo: quem reservou sem conta recebe o código e o usa
// como credencial de cancelamento.
func (uc *CancelReservation) ExecuteByCode(
	ctx context.Context,
	code string,
	actorID *uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByCode(ctx, code)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	return uc.cancel(ctx, res, actorID)
}

func (uc *CancelReservation) cancel(
	ctx context.Context,
	res *models.Reservation,
	actorID *uint,
) (*models.Reservation, error) {

	rest, err := uc.repo.GetRestaurantByID(ctx, res.RestaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	// Elegibilidade sempre avaliada contra o relógio atual.
	now := timezone.NowIn(rest.Timezone)
	if err := domain.Cancel(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: res.RestaurantID,
		UserID:       actorID,
		Action:       "reservation_cancelled",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}
