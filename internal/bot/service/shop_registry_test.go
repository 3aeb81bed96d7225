package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/service"
	mockservices "github.com/Matthew11K/wb-sales-bot/internal/bot/service/mocks"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
)

func TestShopRegistry_ListIsSorted(t *testing.T) {
	repo := mockservices.NewShopRepository(t)
	registry := service.NewShopRegistry(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().Load(mock.Anything).Return(map[string]string{"b": "2", "c": "3", "a": "1"}, nil).Once()

	names, err := registry.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestShopRegistry_Credential(t *testing.T) {
	repo := mockservices.NewShopRepository(t)
	registry := service.NewShopRegistry(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	repo.EXPECT().Load(mock.Anything).Return(map[string]string{"Alpha": "X", "Empty": ""}, nil).Times(3)

	credential, err := registry.Credential(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, "X", credential)

	_, err = registry.Credential(ctx, "Empty")
	assert.True(t, errors.Is(err, &domainerrors.ErrCredentialMissing{}))

	_, err = registry.Credential(ctx, "Ghost")
	assert.True(t, errors.Is(err, &domainerrors.ErrShopNotFound{}))
}

func TestShopRegistry_DeleteUnknownDoesNotSave(t *testing.T) {
	repo := mockservices.NewShopRepository(t)
	registry := service.NewShopRegistry(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().Load(mock.Anything).Return(map[string]string{"Alpha": "X"}, nil).Once()

	err := registry.Delete(context.Background(), "Ghost")

	var notFound *domainerrors.ErrShopNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Ghost", notFound.Name)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestShopRegistry_LoadError(t *testing.T) {
	repo := mockservices.NewShopRepository(t)
	registry := service.NewShopRegistry(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().Load(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	err := registry.Put(context.Background(), "Alpha", "X")

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Конкурентные добавления не должны терять записи: операции чтение-изменение-запись сериализуются.
func TestShopRegistry_ConcurrentPutsAreNotLost(t *testing.T) {
	stored := map[string]string{}

	repo := mockservices.NewShopRepository(t)
	repo.EXPECT().Load(mock.Anything).RunAndReturn(func(context.Context) (map[string]string, error) {
		snapshot := make(map[string]string, len(stored))
		for k, v := range stored {
			snapshot[k] = v
		}

		return snapshot, nil
	})
	repo.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, shops map[string]string) error {
		stored = shops
		return nil
	})

	registry := service.NewShopRegistry(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var wg sync.WaitGroup

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		wg.Add(1)

		go func(name string) {
			defer wg.Done()

			assert.NoError(t, registry.Put(context.Background(), name, "key-"+name))
		}(name)
	}

	wg.Wait()

	names, err := registry.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 8)
}
