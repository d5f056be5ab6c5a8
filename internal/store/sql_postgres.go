package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-notes-vault/internal/config"
	"github.com/MKhiriev/go-notes-vault/internal/logger"
	"github.com/MKhiriev/go-notes-vault/migrations"
)

// NewConnectPostgres opens the server database through the pgx stdlib
// driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, "pgx", cfg.DSN, migrations.DialectPostgres,
		poolLimits{maxOpen: 10, maxIdle: 4}, NewPostgresErrorClassifier(), log)
}
