package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation detecta violações de índice único que escaparam da
// verificação de existência na aplicação (escritas concorrentes). O gorm
// traduz para ErrDuplicatedKey quando TranslateError está ativo; o PgError
// cobre o caminho direto do driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}
