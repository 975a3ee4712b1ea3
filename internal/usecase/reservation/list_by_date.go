package reservation

import (
	"context"
	"time"

	domain "github.com/ReserveAquiServices/api-reservas/internal/domain/reservation"
	"github.com/ReserveAquiServices/api-reservas/internal/dto"
	"github.com/ReserveAquiServices/api-reservas/internal/timezone"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	restaurantID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	rest, err := uc.repo.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(rest.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	reservations, err := uc.repo.ListReservationsForDay(
		ctx,
		restaurantID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(rest.Timezone)

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for i := range reservations {
		res := &reservations[i]
		out = append(out, dto.ReservationListDTO{
			ID:             res.ID,
			Code:           res.Code,
			Date:           res.Date,
			Time:           res.Time,
			ScheduledAt:    res.ScheduledAt,
			Status:         res.Status,
			PartySize:      res.PartySize,
			RequiredTables: domain.RequiredTables(res.PartySize),
			ContactName:    res.ContactName,
			ContactPhone:   res.ContactPhone,
			CanCancel:      domain.CanCancel(res, now),
		})
	}

	return out, nil
}
