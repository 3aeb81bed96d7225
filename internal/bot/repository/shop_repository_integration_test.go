package repository_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository/orm"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	"github.com/Matthew11K/wb-sales-bot/internal/database"
	"github.com/Matthew11K/wb-sales-bot/pkg/txs"
)

func setupTestDatabase(ctx context.Context, t *testing.T, logger *slog.Logger) *database.PostgresDB {
	t.Helper()

	dbName := "testdb"
	dbUser := "testuser"
	dbPassword := "testpassword"

	container, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "не удалось запустить контейнер postgres")

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("не удалось остановить контейнер postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations("file://"+migrationsPath, dsn, logger))

	db, err := database.NewPostgresDB(ctx, &config.Config{DatabaseURL: dsn, DatabaseMaxConn: 5}, logger)
	require.NoError(t, err, "не удалось подключиться к тестовой БД")

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestShopRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("пропуск интеграционного теста в коротком режиме")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := setupTestDatabase(ctx, t, logger)

	for _, storageType := range []config.StorageType{config.SQLStorage, config.SquirrelStorage} {
		t.Run(string(storageType), func(t *testing.T) {
			_, err := db.Pool.Exec(ctx, "DELETE FROM shops")
			require.NoError(t, err)

			cfg := &config.Config{ShopsStorageType: storageType}

			repo, err := repository.NewFactory(db, cfg, logger).CreateShopRepository()
			require.NoError(t, err)

			shops, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, shops)

			initial := map[string]string{
				"Alpha":       "key-1",
				"Магазин <1>": "key-2",
			}
			require.NoError(t, repo.Save(ctx, initial))

			shops, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, initial, shops)

			require.NoError(t, repo.Save(ctx, map[string]string{"Beta": "key-3"}))

			shops, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"Beta": "key-3"}, shops)

			require.NoError(t, repo.Save(ctx, map[string]string{}))

			shops, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, shops)
		})
	}

	t.Run("сохранение во внешней транзакции откатывается вместе с ней", func(t *testing.T) {
		txManager := txs.NewTxManager(db.Pool, logger)
		repo := orm.NewShopRepository(db, txManager)

		require.NoError(t, repo.Save(ctx, map[string]string{"Alpha": "key-1"}))

		errAbort := errors.New("отмена")

		err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
			if err := repo.Save(ctx, map[string]string{"Beta": "key-2"}); err != nil {
				return err
			}

			shops, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"Beta": "key-2"}, shops)

			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		shops, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Alpha": "key-1"}, shops)
	})
}
