package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/migrations"
)

// retryDelays are the pauses between attempts of an operation whose error
// the classifier reports as [Retryable].
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, time.Second}

// DB is a database handle with the dialect it speaks and, for PostgreSQL,
// an error classifier driving retries.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

type poolLimits struct {
	maxOpen, maxIdle int
}

// openDB opens and pings a database. The returned handle is closed again
// when the ping fails.
func openDB(ctx context.Context, driver, dsn, dialect string, limits poolLimits, classifier ErrorClassificator, log *logger.Logger) (*DB, error) {
	log = &logger.Logger{Logger: log.With().Str("dialect", dialect).Logger()}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "openDB").Msg("error opening database")
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	conn.SetMaxOpenConns(limits.maxOpen)
	conn.SetMaxIdleConns(limits.maxIdle)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openDB").Msg("error pinging database")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}
	log.Info().Str("func", "openDB").Msg("connected to database")

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
	}, nil
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it while the failure is transient.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.withRetry").
			Dur("delay", delay).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}
