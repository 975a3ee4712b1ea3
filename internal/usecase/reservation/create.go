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

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	RestaurantID uint
	UserID       *uint

	Date      string
	Time      string
	PartySize int

	ContactName  string
	ContactPhone string
	ContactEmail string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	rest, err := uc.repo.GetRestaurantByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	scheduledAt, err := timezone.ParseDateTime(in.Date, in.Time, rest.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(rest.Timezone)
	if err := domain.Validate(scheduledAt, in.PartySize, now); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		Code:         uuid.NewString(),
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Date:         in.Date,
		Time:         in.Time,
		ScheduledAt:  scheduledAt,
		PartySize:    in.PartySize,
		Status:       string(domain.InitialStatus()),
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
		Action:       "reservation_created",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}
