package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
)

var baseNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func TestValidateAcceptsFutureReservation(t *testing.T) {
	err := Validate(baseNow.Add(5*time.Hour), 4, baseNow)
	assert.NoError(t, err)
}

func TestValidateAcceptsExactLeadTimeBoundary(t *testing.T) {
	// Exatamente 2h de antecedência ainda é aceito.
	err := Validate(baseNow.Add(LeadTime), 2, baseNow)
	assert.NoError(t, err)
}

func TestValidateRejectsShortLeadTime(t *testing.T) {
	err := Validate(baseNow.Add(LeadTime-time.Minute), 2, baseNow)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeLeadTimeViolation, code)
}

func TestValidateRejectsNonPositivePartySize(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		err := Validate(baseNow.Add(5*time.Hour), size, baseNow)

		code, ok := httperr.BusinessCode(err)
		require.True(t, ok, "party_size=%d", size)
		assert.Equal(t, httperr.CodeInvalidPartySize, code)
	}
}

func TestValidateLeadTimeCheckedBeforePartySize(t *testing.T) {
	// Ambas as regras violadas: a antecedência vem primeiro.
	err := Validate(baseNow.Add(time.Hour), 0, baseNow)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeLeadTimeViolation, code)
}
