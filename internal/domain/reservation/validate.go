package reservation

import (
	"time"

	"github.com/ReserveAquiServices/api-reservas/internal/httperr"
)

// LeadTime é a antecedência mínima entre "agora" e o horário agendado.
const LeadTime = 2 * time.Hour

// Validate aplica as regras de criação na ordem fixa: antecedência
// mínima, depois quantidade de pessoas. Roda em toda criação normal;
// o caminho de backfill (CreateReservationUnvalidated) é o único que
// não passa por aqui.
func Validate(scheduledAt time.Time, partySize int, now time.Time) error {
	if scheduledAt.Before(now.Add(LeadTime)) {
		return httperr.ErrBusiness(httperr.CodeLeadTimeViolation)
	}

	if partySize <= 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidPartySize)
	}

	return nil
}
