package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

// RedisSessionRepository хранит сессии чатов в Redis. Устаревание реализовано через TTL ключа,
// поэтому планировщик очистки для него не нужен.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSessionRepository(redisURL, password string, db int, ttl time.Duration,
	logger *slog.Logger) (*RedisSessionRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &RedisSessionRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}

func (r *RedisSessionRepository) Get(ctx context.Context, chatID int64) (*models.ChatSession, error) {
	data, err := r.client.Get(ctx, sessionKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewChatSession(chatID), nil
		}

		r.logger.Error("Ошибка при получении сессии из Redis",
			"error", err,
			"chat_id", chatID,
		)

		return nil, fmt.Errorf("ошибка при получении сессии из Redis: %w", err)
	}

	var session models.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warn("Повреждённая сессия в Redis, начинаем заново",
			"error", err,
			"chat_id", chatID,
		)

		return models.NewChatSession(chatID), nil
	}

	if session.Scratch == nil {
		session.Scratch = make(map[string]string)
	}

	return &session, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *models.ChatSession) error {
	if !session.Active() {
		return r.Delete(ctx, session.ChatID)
	}

	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации сессии: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ChatID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Ошибка при сохранении сессии в Redis",
			"error", err,
			"chat_id", session.ChatID,
		)

		return fmt.Errorf("ошибка при сохранении сессии в Redis: %w", err)
	}

	r.logger.Debug("Сессия сохранена",
		"chat_id", session.ChatID,
		"flow", session.Flow.String(),
		"step", session.Step.String(),
		"ttl", r.ttl,
	)

	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		r.logger.Error("Ошибка при удалении сессии из Redis",
			"error", err,
			"chat_id", chatID,
		)

		return fmt.Errorf("ошибка при удалении сессии из Redis: %w", err)
	}

	return nil
}

func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessionRepository) Close() error {
	return r.client.Close()
}
