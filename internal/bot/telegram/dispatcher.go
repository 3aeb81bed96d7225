package telegram

import (
	"log/slog"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
)

const (
	dispatchAccepted    = "accepted"
	dispatchRateLimited = "rate_limited"
	dispatchStopped     = "stopped"

	defaultQueueSize = 64
)

type UpdateHandler func(update tgbotapi.Update)

type Limiter interface {
	Allow(key string) bool
}

// Dispatcher раскладывает обновления по воркерам по chat id: обновления одного чата
// обрабатываются строго по очереди, разные чаты обрабатываются параллельно.
type Dispatcher struct {
	queues  []chan tgbotapi.Update
	handle  UpdateHandler
	limiter Limiter
	logger  *slog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher запускает workers воркеров. limiter может быть nil.
func NewDispatcher(workers int, handle UpdateHandler, limiter Limiter, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 4
	}

	d := &Dispatcher{
		queues:  make([]chan tgbotapi.Update, workers),
		handle:  handle,
		limiter: limiter,
		logger:  logger,
	}

	for i := range d.queues {
		d.queues[i] = make(chan tgbotapi.Update, defaultQueueSize)

		d.wg.Add(1)

		go func(workerID int) {
			defer d.wg.Done()
			d.worker(workerID, d.queues[workerID])
		}(i)
	}

	logger.Info("Диспетчер обновлений запущен", "workers", workers)

	return d
}

// Submit ставит обновление в очередь воркера. Возвращает false, если чат превысил
// лимит сообщений; такое обновление не обрабатывается.
func (d *Dispatcher) Submit(update tgbotapi.Update) bool {
	var chatID int64

	// Обновления без чата (например, кнопки под inline сообщениями) идут в первую очередь без лимита.
	if chat := chatOf(update); chat != nil {
		chatID = chat.ID

		if d.limiter != nil && !d.limiter.Allow(strconv.FormatInt(chatID, 10)) {
			metrics.RecordDispatchedUpdate(dispatchRateLimited)

			d.logger.Warn("Превышен лимит сообщений для чата", "chat_id", chatID)

			return false
		}
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		metrics.RecordDispatchedUpdate(dispatchStopped)
		return true
	}

	d.queues[shard(chatID, len(d.queues))] <- update

	metrics.RecordDispatchedUpdate(dispatchAccepted)

	return true
}

// Stop перестаёт принимать обновления и дожидается обработки уже поставленных в очередь.
func (d *Dispatcher) Stop() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	d.stopped = true

	for _, queue := range d.queues {
		close(queue)
	}

	d.mu.Unlock()

	d.wg.Wait()

	d.logger.Info("Диспетчер обновлений остановлен")
}

func (d *Dispatcher) worker(workerID int, queue <-chan tgbotapi.Update) {
	for update := range queue {
		d.handle(update)
	}

	d.logger.Debug("Воркер диспетчера завершил работу", "worker", workerID)
}

func shard(chatID int64, n int) int {
	s := chatID % int64(n)
	if s < 0 {
		s = -s
	}

	return int(s)
}

func chatOf(update tgbotapi.Update) *tgbotapi.Chat {
	switch {
	case update.Message != nil:
		return update.Message.Chat
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat
	default:
		return nil
	}
}
