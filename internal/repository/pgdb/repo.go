package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Код уникального нарушения ограничения в PostgreSQL.
const uniqueViolationCode = "23505"

func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	return false
}
