package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de Postgres para violación de constraint de exclusión.
const pgExclusionViolation = "23P01"

// IsExclusionConflict detecta el rechazo del constraint de exclusión sobre
// (table_id, tsrange(start_time, end_time)): dos reservas ocupantes nunca
// pueden solaparse en la misma mesa aunque lleguen en paralelo.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
