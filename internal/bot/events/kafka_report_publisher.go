package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const writeTimeout = 5 * time.Second

// KafkaReportPublisher отправляет события об отчётах в Kafka. Ключом сообщения служит id чата,
// поэтому события одного чата попадают в одну партицию.
type KafkaReportPublisher struct {
	producer *kafka.Writer
	logger   *slog.Logger
	topic    string
}

func NewKafkaReportPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaReportPublisher {
	producer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           writeTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(logger.Debug),
		ErrorLogger:            kafka.LoggerFunc(logger.Error),
	}

	return &KafkaReportPublisher{
		producer: producer,
		logger:   logger,
		topic:    topic,
	}
}

func (p *KafkaReportPublisher) PublishReport(ctx context.Context, event *models.ReportEvent) error {
	value, err := json.Marshal(NewReportEventMessage(event))
	if err != nil {
		return fmt.Errorf("ошибка при сериализации события: %w", err)
	}

	err = p.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", event.ChatID)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
		Time: event.GeneratedAt,
	})
	if err != nil {
		p.logger.Error("Ошибка при отправке события в Kafka",
			"error", err,
			"request_id", event.RequestID,
			"topic", p.topic,
		)

		return fmt.Errorf("ошибка при отправке события в Kafka: %w", err)
	}

	p.logger.Debug("Событие об отчёте отправлено в Kafka",
		"request_id", event.RequestID,
		"topic", p.topic,
	)

	return nil
}

func (p *KafkaReportPublisher) Close() error {
	return p.producer.Close()
}
