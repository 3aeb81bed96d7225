package txs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/multierr"
)

type TxManager struct {
	pool    *pgxpool.Pool
	options pgx.TxOptions
	logger  *slog.Logger
}

// NewTxManager создаёт менеджер транзакций с уровнем изоляции READ COMMITTED.
func NewTxManager(pool *pgxpool.Pool, logger *slog.Logger) *TxManager {
	return &TxManager{
		pool:    pool,
		options: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		logger:  logger,
	}
}

// WithTransaction выполняет fn в транзакции. Если в ctx уже есть транзакция,
// fn выполняется в ней, а фиксацией управляет внешний вызов.
func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.options)
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Паника внутри транзакции, откат", "panic", r)

			_ = tx.Rollback(context.WithoutCancel(ctx))

			panic(r)
		}

		if err == nil {
			return
		}

		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			m.logger.Error("Не удалось откатить транзакцию", "error", rbErr)
			err = multierr.Append(err, fmt.Errorf("ошибка rollback: %w", rbErr))
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при commit транзакции: %w", err)
	}

	return nil
}
