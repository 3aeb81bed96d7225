package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/cache"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/clients"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/domain"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/events"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository/memory"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/scheduler"
	botservice "github.com/Matthew11K/wb-sales-bot/internal/bot/service"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/telegram"
	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	"github.com/Matthew11K/wb-sales-bot/internal/common/ratelimit"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	"github.com/Matthew11K/wb-sales-bot/internal/database"
	"github.com/Matthew11K/wb-sales-bot/pkg"
)

type closer struct {
	name  string
	close func() error
}

type sessionStore struct {
	repo    botservice.SessionRepository
	sweeper *scheduler.SessionSweeper
	redis   *cache.RedisSessionRepository
}

func setupTelegramCommands(ctx context.Context, telegramClient domain.TelegramClientAPI, appLogger *slog.Logger) {
	botCommands := []domain.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
		{Command: "help", Description: "Получить справку о командах"},
		{Command: "addshop", Description: "Добавить магазин"},
		{Command: "delshop", Description: "Удалить магазин"},
		{Command: "shops", Description: "Список магазинов"},
		{Command: "report", Description: "Отчёт о продажах"},
		{Command: "cancel", Description: "Отменить текущее действие"},
	}

	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func setupDatabase(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*database.PostgresDB, error) {
	if cfg.ShopsStorageType != config.SQLStorage && cfg.ShopsStorageType != config.SquirrelStorage {
		return nil, nil //nolint:nilnil // postgres нужен только SQL хранилищам
	}

	if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL, appLogger); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return db, nil
}

func setupSessions(cfg *config.Config, appLogger *slog.Logger) (*sessionStore, error) {
	switch cfg.SessionStorage {
	case config.RedisSessions:
		redisSessions, err := cache.NewRedisSessionRepository(
			cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL, appLogger,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
		}

		appLogger.Info("Сессии хранятся в Redis", "ttl", cfg.SessionTTL.String())

		return &sessionStore{repo: redisSessions, redis: redisSessions}, nil
	case config.MemorySessions, "":
		memorySessions := memory.NewSessionRepository()
		sweeper := scheduler.NewSessionSweeper(memorySessions, cfg.SessionTTL, cfg.SessionSweepInterval, appLogger)

		if err := sweeper.Start(); err != nil {
			return nil, fmt.Errorf("ошибка запуска очистки сессий: %w", err)
		}

		appLogger.Info("Сессии хранятся в памяти", "ttl", cfg.SessionTTL.String())

		return &sessionStore{repo: memorySessions, sweeper: sweeper}, nil
	default:
		return nil, fmt.Errorf("неизвестное хранилище сессий: %s", cfg.SessionStorage)
	}
}

func gracefulShutdown(poller *telegram.Poller, sweeper *scheduler.SessionSweeper, closers []closer, appLogger *slog.Logger) {
	poller.Stop()

	if sweeper != nil {
		sweeper.Stop()
	}

	var err error

	for _, c := range closers {
		if closeErr := c.close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", c.name, closeErr))
		}
	}

	if err != nil {
		appLogger.Error("Ошибки при освобождении ресурсов",
			"error", err,
		)
	}

	appLogger.Info("Бот успешно остановлен")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	cfg := config.LoadConfig()

	appLogger := pkg.NewLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var closers []closer

	db, err := setupDatabase(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подготовке базы данных",
			"error", err,
		)

		return err
	}

	var healthChecks []metrics.HealthCheck

	if db != nil {
		closers = append(closers, closer{name: "postgres", close: db.Close})
		healthChecks = append(healthChecks, metrics.HealthCheck{Name: "postgres", Check: db.Ping})
	}

	shopRepo, err := repository.NewFactory(db, cfg, appLogger).CreateShopRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория магазинов",
			"error", err,
		)

		return fmt.Errorf("ошибка создания репозитория магазинов: %w", err)
	}

	registry := botservice.NewShopRegistry(shopRepo, appLogger)

	shops, err := registry.List(ctx)
	if err != nil {
		return fmt.Errorf("ошибка загрузки магазинов: %w", err)
	}

	appLogger.Info("Магазины загружены", "count", len(shops))

	sessions, err := setupSessions(cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании хранилища сессий",
			"error", err,
		)

		return err
	}

	if sessions.redis != nil {
		closers = append([]closer{{name: "redis", close: sessions.redis.Close}}, closers...)
		healthChecks = append(healthChecks, metrics.HealthCheck{Name: "redis", Check: sessions.redis.Ping})
	}

	publisher, err := events.NewReportPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании публикатора событий",
			"error", err,
		)

		return fmt.Errorf("ошибка создания публикатора событий: %w", err)
	}

	closers = append([]closer{{name: "publisher", close: publisher.Close}}, closers...)

	salesLimiter := ratelimit.NewKeyedLimiter(ctx, cfg.SalesRateLimitRequests, cfg.SalesRateLimitWindow)
	chatLimiter := ratelimit.NewKeyedLimiter(ctx, cfg.ChatRateLimitRequests, cfg.ChatRateLimitWindow)

	wbClient := clients.NewWildberriesClient(cfg, salesLimiter, appLogger)

	coreService := botservice.NewBotService(registry, sessions.repo, wbClient, publisher, cfg.Location(), appLogger)
	closers = append([]closer{{name: "report events", close: coreService.Close}}, closers...)

	botService := botservice.NewInstrumentedBotService(coreService, appLogger)

	telegramClient := clients.NewTelegramClient(cfg.TelegramBotToken, appLogger)
	setupTelegramCommands(ctx, telegramClient, appLogger)

	poller := telegram.NewPoller(telegramClient, botService, cfg.BotWorkers, chatLimiter, cfg.UpdateTimeout, appLogger)
	if err := poller.Start(); err != nil {
		appLogger.Error("Ошибка при запуске Telegram поллера",
			"error", err,
		)

		gracefulShutdown(poller, sessions.sweeper, closers, appLogger)

		return fmt.Errorf("ошибка запуска поллера: %w", err)
	}

	metricsServer := metrics.NewMetricsServer(cfg.BotMetricsPort, appLogger, healthChecks...)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
			stop()
		}
	}()

	appLogger.Info("Бот запущен",
		"workers", cfg.BotWorkers,
		"shops_storage", string(cfg.ShopsStorageType),
		"session_storage", string(cfg.SessionStorage),
	)

	<-ctx.Done()
	appLogger.Info("Получен сигнал завершения")

	gracefulShutdown(poller, sessions.sweeper, closers, appLogger)

	return nil
}
