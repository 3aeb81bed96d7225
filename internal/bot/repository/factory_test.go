package repository_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
)

func TestFactory_CreateShopRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("файловое хранилище", func(t *testing.T) {
		cfg := &config.Config{
			ShopsStorageType: config.FileStorage,
			ShopsFilePath:    filepath.Join(t.TempDir(), "config.json"),
		}

		repo, err := repository.NewFactory(nil, cfg, logger).CreateShopRepository()
		require.NoError(t, err)

		require.NoError(t, repo.Save(context.Background(), map[string]string{"Alpha": "key"}))

		shops, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Alpha": "key"}, shops)
	})

	t.Run("SQL без подключения к базе", func(t *testing.T) {
		cfg := &config.Config{ShopsStorageType: config.SQLStorage}

		_, err := repository.NewFactory(nil, cfg, logger).CreateShopRepository()

		var storageErr *errors.ErrUnknownStorageType
		assert.ErrorAs(t, err, &storageErr)
	})

	t.Run("неизвестный тип хранилища", func(t *testing.T) {
		cfg := &config.Config{ShopsStorageType: "MONGO"}

		_, err := repository.NewFactory(nil, cfg, logger).CreateShopRepository()

		var storageErr *errors.ErrUnknownStorageType
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "MONGO", storageErr.StorageType)
	})
}
