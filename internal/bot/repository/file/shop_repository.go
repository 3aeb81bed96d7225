package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ShopRepository хранит соответствие «имя магазина → API ключ» одним JSON объектом в файле.
// Файл читается заново при каждой операции, кэша в памяти нет.
type ShopRepository struct {
	path   string
	logger *slog.Logger
}

func NewShopRepository(path string, logger *slog.Logger) *ShopRepository {
	return &ShopRepository{
		path:   path,
		logger: logger,
	}
}

// Load никогда не возвращает ошибку: отсутствующий или повреждённый файл означает пустой список.
// Эти случаи различаются только в логе.
func (r *ShopRepository) Load(_ context.Context) (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("Файл конфигурации магазинов ещё не создан", "path", r.path)
		} else {
			r.logger.Warn("Не удалось прочитать файл конфигурации магазинов",
				"path", r.path,
				"error", err,
			)
		}

		return map[string]string{}, nil
	}

	var shops map[string]string
	if err := json.Unmarshal(data, &shops); err != nil {
		r.logger.Warn("Файл конфигурации магазинов повреждён, считаем что магазинов нет",
			"path", r.path,
			"error", err,
		)

		return map[string]string{}, nil
	}

	if shops == nil {
		shops = map[string]string{}
	}

	return shops, nil
}

// Save перезаписывает файл целиком. Ключи сортируются, поэтому повторное сохранение
// неизменённых данных даёт тот же файл байт в байт.
func (r *ShopRepository) Save(_ context.Context, shops map[string]string) error {
	if shops == nil {
		shops = map[string]string{}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(shops); err != nil {
		return fmt.Errorf("ошибка при сериализации конфигурации магазинов: %w", err)
	}

	if err := writeFileReplace(r.path, buf.Bytes()); err != nil {
		return fmt.Errorf("ошибка при сохранении конфигурации магазинов: %w", err)
	}

	r.logger.Info("Конфигурация магазинов сохранена",
		"path", r.path,
		"count", len(shops),
	)

	return nil
}

func writeFileReplace(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
