package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"

	// postgres driver для golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// file source для чтения миграций с диска.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations применяет все миграции из sourceURL (например, file://migrations) к базе databaseURL.
func RunMigrations(sourceURL, databaseURL string, logger *slog.Logger) error {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр migrate: %w", err)
	}

	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil || dbErr != nil {
			logger.Warn("Ошибка при закрытии migrate",
				"source_error", sourceErr,
				"db_error", dbErr,
			)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Схема базы данных актуальна")
			return nil
		}

		return fmt.Errorf("не удалось применить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию схемы: %w", err)
	}

	logger.Info("Миграции успешно применены",
		"version", version,
		"dirty", dirty,
	)

	return nil
}
