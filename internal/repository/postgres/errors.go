package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// violatedConstraint returns the name of the violated unique constraint,
// or "" when the error is not a unique violation. Used to map a racing
// insert to the same duplicate error the pre-check would have produced.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return strings.ToLower(pgErr.ConstraintName)
	}
	return ""
}
