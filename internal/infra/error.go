package infra

import (
	"errors"
	"log/slog"

	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	// Constraint names the violated unique or foreign key, when known.
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	return wrap(slogger, kind, "", msg, err)
}

// WrapConstraintErr records which constraint a duplicate or foreign key
// failure hit.
func WrapConstraintErr(slogger *slog.Logger, kind RepositoryErrorKind, constraint, msg string, err error) error {
	return wrap(slogger, kind, constraint, msg, err)
}

// WrapPgErr classifies a pgx failure by its SQLSTATE.
func WrapPgErr(slogger *slog.Logger, msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(slogger, KindNotFound, msg, err)
	case pgconv.IsUniqueViolation(err):
		return WrapConstraintErr(slogger, KindDuplicateKey, pgconv.ConstraintName(err), msg, err)
	case pgconv.IsForeignKeyViolation(err):
		return WrapConstraintErr(slogger, KindForeignKeyViolated, pgconv.ConstraintName(err), msg, err)
	default:
		return WrapRepoErr(slogger, KindDBFailure, msg, err)
	}
}

func wrap(slogger *slog.Logger, kind RepositoryErrorKind, constraint, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if constraint != "" {
		logArgs = append(logArgs, slog.String("constraint", constraint))
	}

	// Lookups that find nothing are routine; only real failures are errors.
	if kind == KindNotFound {
		slogger.Debug("Repository error: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ViolatedConstraint returns the constraint recorded on a RepositoryError.
func ViolatedConstraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

// Unique constraints the use cases react to. Both stores report these names.
const (
	ConstraintCustomerEmail  = "customers_email_key"
	ConstraintCustomerAuthID = "customers_auth_provider_id_key"
	ConstraintCustomerCode   = "customers_code_key"
)
