package reservation

import (
	"context"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
)

// UnlinkTable remove o vínculo; nenhum efeito colateral sobre a reserva
// ou sobre o estado da mesa.
type UnlinkTable struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnlinkTable(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UnlinkTable {
	return &UnlinkTable{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UnlinkTable) Execute(
	ctx context.Context,
	restaurantID uint,
	reservationID uint,
	tableID uint,
	actorID *uint,
) error {

	res, err := uc.repo.GetReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := uc.repo.UnlinkTable(ctx, res.ID, tableID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       actorID,
		Action:       "table_unlinked",
		Entity:       "reservation",
		EntityID:     &res.ID,
		Metadata:     map[string]any{"table_id": tableID},
	})

	return nil
}
