package orm

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Matthew11K/wb-sales-bot/internal/database"
	customerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/pkg/txs"
)

type ShopRepository struct {
	db        *database.PostgresDB
	txManager *txs.TxManager
	sq        sq.StatementBuilderType
}

func NewShopRepository(db *database.PostgresDB, txManager *txs.TxManager) *ShopRepository {
	return &ShopRepository{
		db:        db,
		txManager: txManager,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ShopRepository) Load(ctx context.Context) (map[string]string, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select("name", "credential").
		From("shops").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение магазинов", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение магазинов", Cause: err}
	}
	defer rows.Close()

	shops := make(map[string]string)

	for rows.Next() {
		var name, credential string

		if err := rows.Scan(&name, &credential); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "магазин", Cause: err}
		}

		shops[name] = credential
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение магазинов", Cause: err}
	}

	return shops, nil
}

func (r *ShopRepository) Save(ctx context.Context, shops map[string]string) error {
	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		querier := txs.GetQuerier(ctx, r.db.Pool)

		query, args, err := r.sq.Delete("shops").ToSql()
		if err != nil {
			return &customerrors.ErrBuildSQLQuery{Operation: "очистка магазинов", Cause: err}
		}

		if _, err := querier.Exec(ctx, query, args...); err != nil {
			return &customerrors.ErrSQLExecution{Operation: "очистка магазинов", Cause: err}
		}

		if len(shops) == 0 {
			return nil
		}

		now := time.Now()
		insert := r.sq.Insert("shops").Columns("name", "credential", "created_at", "updated_at")

		for name, credential := range shops {
			insert = insert.Values(name, credential, now, now)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return &customerrors.ErrBuildSQLQuery{Operation: "вставка магазинов", Cause: err}
		}

		if _, err := querier.Exec(ctx, query, args...); err != nil {
			return &customerrors.ErrSQLExecution{Operation: "вставка магазинов", Cause: err}
		}

		return nil
	})
}
