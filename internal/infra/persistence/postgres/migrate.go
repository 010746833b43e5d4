package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"plantcare/internal/errors"
	"plantcare/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded goose migrations up to the latest version.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	logger.Info("Database schema up to date", slog.Int64("version", version))

	return nil
}
