package exceptions

import (
	"errors"

	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/lib/pq"
)

var (
	ErrPostgresDBQueryData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresQueryData)
	}
	ErrPostgresDBScanData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresScanData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresInsertData)
	}
	ErrPostgresDBBeginTx = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresBeginTx)
	}
	ErrPostgresDBCommitTx = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresCommitTx)
	}
)

const pqUniqueViolationCode = "23505"

// IsUniqueViolation reports whether err originates from a postgres unique
// constraint violation, e.g. a duplicate session_id insert racing past the
// in-transaction existence check.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolationCode
}
