package reservation

import (
	"context"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
	"github.com/ReserveAquiServices/api-reservas/internal/timezone"
)

type CompleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteReservation {
	return &CompleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	restaurantID uint,
	reservationID uint,
	actorID *uint,
) (*models.Reservation, error) {

	rest, err := uc.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	res, err := uc.repo.GetReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	now := timezone.NowIn(rest.Timezone)
	if err := domain.Complete(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       actorID,
		Action:       "reservation_completed",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}
