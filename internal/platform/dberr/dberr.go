// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// The search engine promises its callers a clean error taxonomy: deadline
// overruns surface as TIMEOUT, connectivity failures as STORE_UNAVAILABLE,
// and a missing row as NOT_FOUND. Everything else is an internal error whose
// cause is kept server-side.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/longboxhq/longbox/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the query site for server-side logs; it is never
// exposed to the client.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Deadline and cancellation map to TIMEOUT. The caller threads its
	// deadline through context; pgx surfaces it either as the context error
	// or as a statement_timeout SQLSTATE (57014).
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.Timeout(err)
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case "57014": // query_canceled (statement_timeout)
			return apperr.Timeout(err)
		case "57P01", "57P02", "57P03": // admin_shutdown, crash_shutdown, cannot_connect_now
			return apperr.StoreUnavailable(err)
		}
		return apperr.Internal(err)
	}

	// 3. Network-level failures (dial errors, broken pool) mean the store is
	// unreachable rather than the query being wrong.
	if pgconn.SafeToRetry(err) {
		return apperr.StoreUnavailable(err)
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
