package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the core needs to distinguish.
const (
	codeUniqueViolation = "23505"
	codeDuplicateColumn = "42701"
	codeUndefinedColumn = "42703"
)

func isUniqueViolation(err error) bool {
	return hasSQLState(err, codeUniqueViolation)
}

func isDuplicateColumn(err error) bool {
	return hasSQLState(err, codeDuplicateColumn)
}

func isUndefinedColumn(err error) bool {
	return hasSQLState(err, codeUndefinedColumn)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
