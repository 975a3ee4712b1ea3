package httperr

import "errors"

// Códigos de violação de regra de negócio usados pelo domínio de reservas.
const (
	CodeLeadTimeViolation    = "lead_time_violation"
	CodeInvalidPartySize     = "invalid_party_size"
	CodeDuplicateTableNumber = "duplicate_table_number"
	CodeDuplicateLink        = "duplicate_link"
	CodeNotCancellable       = "not_cancellable"
	CodeInvalidState         = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
