package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"blog-post-service/internal/logger"
)

// RunMigrations applies pending schema migrations. A database that is already
// up to date is not an error.
func RunMigrations(uri, migrationsPath string, log *logger.Logger) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), uri)
	if err != nil {
		log.Error("Failed to init migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warn("Failed to close migration source", slog.String("error", srcErr.Error()))
		}
		if dbErr != nil {
			log.Warn("Failed to close migration database handle", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug("No new migrations to apply")
			return nil
		}
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	log.Info("Migrations applied")
	return nil
}
