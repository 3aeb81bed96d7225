package repository

import (
	"log/slog"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository/file"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository/orm"
	sqlrepo "github.com/Matthew11K/wb-sales-bot/internal/bot/repository/sql"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/service"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	"github.com/Matthew11K/wb-sales-bot/internal/database"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/pkg/txs"
)

type Factory struct {
	db     *database.PostgresDB
	config *config.Config
	logger *slog.Logger
}

// NewFactory создаёт фабрику репозиториев. db может быть nil, если магазины хранятся в файле.
func NewFactory(db *database.PostgresDB, config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		db:     db,
		config: config,
		logger: logger,
	}
}

func (f *Factory) CreateShopRepository() (service.ShopRepository, error) {
	switch f.config.ShopsStorageType {
	case config.FileStorage:
		f.logger.Info("Создание файлового репозитория магазинов", "path", f.config.ShopsFilePath)
		return file.NewShopRepository(f.config.ShopsFilePath, f.logger), nil
	case config.SquirrelStorage:
		if f.db == nil {
			return nil, &errors.ErrUnknownStorageType{StorageType: string(f.config.ShopsStorageType)}
		}

		f.logger.Info("Создание ORM (Squirrel) репозитория магазинов")

		return orm.NewShopRepository(f.db, txs.NewTxManager(f.db.Pool, f.logger)), nil
	case config.SQLStorage:
		if f.db == nil {
			return nil, &errors.ErrUnknownStorageType{StorageType: string(f.config.ShopsStorageType)}
		}

		f.logger.Info("Создание SQL репозитория магазинов")

		return sqlrepo.NewShopRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownStorageType{StorageType: string(f.config.ShopsStorageType)}
	}
}
