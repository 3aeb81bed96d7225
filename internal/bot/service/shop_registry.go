package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
)

// ShopRegistry сериализует все операции чтение-изменение-запись над хранилищем магазинов.
// Хранилище перечитывается на каждую операцию, кэша нет.
type ShopRegistry struct {
	mu     sync.Mutex
	repo   ShopRepository
	logger *slog.Logger
}

func NewShopRegistry(repo ShopRepository, logger *slog.Logger) *ShopRegistry {
	return &ShopRegistry{
		repo:   repo,
		logger: logger,
	}
}

// Put добавляет магазин или перезаписывает ключ существующего с тем же именем.
func (r *ShopRegistry) Put(ctx context.Context, name, credential string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при загрузке магазинов: %w", err)
	}

	_, replaced := shops[name]
	shops[name] = credential

	if err := r.repo.Save(ctx, shops); err != nil {
		return fmt.Errorf("ошибка при сохранении магазина: %w", err)
	}

	metrics.SetRegisteredShops(len(shops))

	r.logger.Info("Магазин сохранён",
		"shop", name,
		"replaced", replaced,
	)

	return nil
}

func (r *ShopRegistry) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при загрузке магазинов: %w", err)
	}

	if _, ok := shops[name]; !ok {
		return &domainerrors.ErrShopNotFound{Name: name}
	}

	delete(shops, name)

	if err := r.repo.Save(ctx, shops); err != nil {
		return fmt.Errorf("ошибка при удалении магазина: %w", err)
	}

	metrics.SetRegisteredShops(len(shops))

	r.logger.Info("Магазин удалён", "shop", name)

	return nil
}

// List возвращает имена магазинов в алфавитном порядке.
func (r *ShopRegistry) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при загрузке магазинов: %w", err)
	}

	names := make([]string, 0, len(shops))
	for name := range shops {
		names = append(names, name)
	}

	sort.Strings(names)

	metrics.SetRegisteredShops(len(names))

	return names, nil
}

func (r *ShopRegistry) Exists(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.repo.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("ошибка при загрузке магазинов: %w", err)
	}

	_, ok := shops[name]

	return ok, nil
}

// Credential возвращает ErrShopNotFound или ErrCredentialMissing, если отчёт по магазину построить нельзя.
func (r *ShopRegistry) Credential(ctx context.Context, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.repo.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("ошибка при загрузке магазинов: %w", err)
	}

	credential, ok := shops[name]
	if !ok {
		return "", &domainerrors.ErrShopNotFound{Name: name}
	}

	if credential == "" {
		return "", &domainerrors.ErrCredentialMissing{Name: name}
	}

	return credential, nil
}
