package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/ReserveAquiServices/api-reservas/internal/audit"
	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
	"github.com/ReserveAquiServices/api-reservas/internal/timezone"
)

// CreateReservationUnvalidated grava uma reserva sem as regras de
// antecedência e quantidade. Caminho interno para backfill administrativo
// e fixtures de teste; não é registrado em nenhuma rota e não deve ser
// alcançável por requisição de usuário.
type CreateReservationUnvalidated struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservationUnvalidated(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservationUnvalidated {
	return &CreateReservationUnvalidated{
		repo:  repo,
		audit: audit,
	}
}

type CreateReservationUnvalidatedInput struct {
	CreateReservationInput

	// Status inicial opcional; backfill pode gravar reservas já
	// confirmadas ou concluídas.
	Status domain.Status
}

func (uc *CreateReservationUnvalidated) Execute(
	ctx context.Context,
	in CreateReservationUnvalidatedInput,
) (*models.Reservation, error) {

	rest, err := uc.repo.GetRestaurantByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	scheduledAt, err := timezone.ParseDateTime(in.Date, in.Time, rest.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	status := in.Status
	if status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	res := &models.Reservation{
		Code:         uuid.NewString(),
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Date:         in.Date,
		Time:         in.Time,
		ScheduledAt:  scheduledAt,
		PartySize:    in.PartySize,
		Status:       string(status),
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Action:       "reservation_backfilled",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}
