package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/migrations"
)

// defaultRetryDelays are the pauses between attempts of an operation that
// failed with a retryable error.
var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// DB wraps the *sql.DB connection pool with error classification and a
// retry policy for transient PostgreSQL failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op and repeats it after each of db.retryDelays while it
// fails with a retryable error. A retryable error that survives every
// attempt is wrapped in [ErrTemporarilyUnavailable].
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for attempt, delay := range db.retryDelays {
		if !db.isRetryable(err) {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retryable database error, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		err = op()
	}

	if db.isRetryable(err) {
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	}
	return err
}

func (db *DB) isRetryable(err error) bool {
	if err == nil || db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
