package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique violation error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsDuplicateObjectError checks if the error reports that a database object
// (e.g. a constraint being added twice) already exists.
func IsDuplicateObjectError(err error) bool {
	var pgErr *pgconn.PgError
	// 42710 duplicate_object, 42P07 duplicate_table
	return errors.As(err, &pgErr) && (pgErr.Code == "42710" || pgErr.Code == "42P07")
}
