package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
	"github.com/ReserveAquiServices/api-reservas/internal/models"
)

func reservationAt(status Status, scheduledAt time.Time) *models.Reservation {
	return &models.Reservation{
		Status:      string(status),
		ScheduledAt: scheduledAt,
	}
}

func TestCanCancel(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		status   Status
		offset   time.Duration
		expected bool
	}{
		{"pending com folga", StatusPending, 5 * time.Hour, true},
		{"confirmed com folga", StatusConfirmed, 5 * time.Hour, true},
		{"na fronteira exata", StatusPending, LeadTime, true},
		{"muito perto do horário", StatusConfirmed, time.Hour, false},
		{"já passou", StatusPending, -time.Hour, false},
		{"cancelada é terminal", StatusCancelled, 5 * time.Hour, false},
		{"concluída é terminal", StatusCompleted, 5 * time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := reservationAt(tc.status, now.Add(tc.offset))
			assert.Equal(t, tc.expected, CanCancel(res, now))
		})
	}
}

func TestCancelSetsStatusAndTimestamp(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	res := reservationAt(StatusConfirmed, now.Add(5*time.Hour))

	require.NoError(t, Cancel(res, now))

	assert.Equal(t, string(StatusCancelled), res.Status)
	require.NotNil(t, res.CancelledAt)
	assert.Equal(t, now, *res.CancelledAt)
}

func TestCancelRejectsWhenNotEligible(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	res := reservationAt(StatusPending, now.Add(time.Hour))

	err := Cancel(res, now)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeNotCancellable, code)
	assert.Equal(t, string(StatusPending), res.Status)
	assert.Nil(t, res.CancelledAt)
}

func TestConfirmAndComplete(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	res := reservationAt(StatusPending, now.Add(5*time.Hour))
	require.NoError(t, Confirm(res, now))
	assert.Equal(t, string(StatusConfirmed), res.Status)
	require.NotNil(t, res.ConfirmedAt)

	require.NoError(t, Complete(res, now))
	assert.Equal(t, string(StatusCompleted), res.Status)
	require.NotNil(t, res.CompletedAt)
}

func TestTerminalStatusesRejectTransitions(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		res := reservationAt(status, now.Add(5*time.Hour))

		err := Confirm(res, now)
		code, ok := httperr.BusinessCode(err)
		require.True(t, ok, "status=%s", status)
		assert.Equal(t, httperr.CodeInvalidState, code)

		err = Complete(res, now)
		code, ok = httperr.BusinessCode(err)
		require.True(t, ok, "status=%s", status)
		assert.Equal(t, httperr.CodeInvalidState, code)
	}
}

func TestStatusHelpers(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())

	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(Status("waiting")))

	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
}
