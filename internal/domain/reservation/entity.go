package reservation

import (
	"time"

	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CanCancel reavalia a elegibilidade no momento da consulta: o status não
// pode ser terminal e o horário agendado ainda precisa estar a pelo menos
// LeadTime de distância. Uma reserva criada com folga deixa de ser
// cancelável conforme o relógio avança.
func CanCancel(res *models.Reservation, now time.Time) bool {
	if IsTerminal(Status(res.Status)) {
		return false
	}
	return !res.ScheduledAt.Before(now.Add(LeadTime))
}

func Cancel(res *models.Reservation, now time.Time) error {
	if !CanCancel(res, now) {
		return httperr.ErrBusiness(httperr.CodeNotCancellable)
	}

	res.Status = string(StatusCancelled)
	res.CancelledAt = &now
	return nil
}

func Confirm(res *models.Reservation, now time.Time) error {
	if err := CanConfirm(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusConfirmed)
	res.ConfirmedAt = &now
	return nil
}

func Complete(res *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCompleted)
	res.CompletedAt = &now
	return nil
}
