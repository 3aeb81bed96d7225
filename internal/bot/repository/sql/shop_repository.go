package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/Matthew11K/wb-sales-bot/internal/database"
	"github.com/jackc/pgx/v5"
)

type ShopRepository struct {
	db *database.PostgresDB
}

func NewShopRepository(db *database.PostgresDB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) Load(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Pool.Query(ctx, "SELECT name, credential FROM shops ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка магазинов: %w", err)
	}
	defer rows.Close()

	shops := make(map[string]string)

	for rows.Next() {
		var name, credential string

		if err := rows.Scan(&name, &credential); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании магазина: %w", err)
		}

		shops[name] = credential
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении списка магазинов: %w", err)
	}

	return shops, nil
}

// Save заменяет содержимое таблицы целиком, как и файловое хранилище.
func (r *ShopRepository) Save(ctx context.Context, shops map[string]string) (err error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, "DELETE FROM shops"); err != nil {
		return fmt.Errorf("ошибка при очистке таблицы магазинов: %w", err)
	}

	if len(shops) > 0 {
		now := time.Now()
		batch := &pgx.Batch{}

		for name, credential := range shops {
			batch.Queue("INSERT INTO shops (name, credential, created_at, updated_at) VALUES ($1, $2, $3, $4)",
				name, credential, now, now)
		}

		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("ошибка при сохранении магазинов: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
