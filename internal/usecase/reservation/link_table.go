package reservation

import (
	"context"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

// LinkTable registra o vínculo entre uma reserva e uma mesa do mesmo
// restaurante. O par (reserva, mesa) é único; a escolha de QUAIS mesas
// vincular é do chamador — nenhuma conferência contra RequiredTables
// acontece aqui.
type LinkTable struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLinkTable(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *LinkTable {
	return &LinkTable{
		repo:  repo,
		audit: audit,
	}
}

func (uc *LinkTable) Execute(
	ctx context.Context,
	restaurantID uint,
	reservationID uint,
	tableID uint,
	actorID *uint,
) (*models.ReservationTable, error) {

	res, err := uc.repo.GetReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	table, err := uc.repo.GetTable(ctx, restaurantID, tableID)
	if err != nil {
		return nil, httperr.ErrBusiness("table_not_found")
	}

	link := &models.ReservationTable{
		ReservationID: res.ID,
		TableID:       table.ID,
	}

	if err := uc.repo.LinkTable(ctx, link); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		UserID:       actorID,
		Action:       "table_linked",
		Entity:       "reservation",
		EntityID:     &res.ID,
		Metadata:     map[string]any{"table_id": table.ID, "table_number": table.Number},
	})

	return link, nil
}
