package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Matthew11K/wb-sales-bot/internal/config"
)

const (
	connectTimeout    = 5 * time.Second
	healthCheckPeriod = 30 * time.Second
)

// PostgresDB держит пул соединений для SQL хранилищ магазинов.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при парсинге строки подключения к PostgreSQL: %w", err)
	}

	if cfg.DatabaseMaxConn > 0 {
		poolConfig.MaxConns = int32(min(cfg.DatabaseMaxConn, math.MaxInt32)) //nolint:gosec // ограничено выше
	}

	poolConfig.ConnConfig.ConnectTimeout = connectTimeout
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пула соединений PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("PostgreSQL недоступен: %w", err)
	}

	logger.Info("Подключение к PostgreSQL установлено",
		"max_conns", poolConfig.MaxConns,
	)

	return &PostgresDB{
		Pool:   pool,
		logger: logger,
	}, nil
}

// Ping используется проверкой /health.
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

func (db *PostgresDB) Close() error {
	db.Pool.Close()
	db.logger.Info("Пул соединений PostgreSQL закрыт")

	return nil
}
