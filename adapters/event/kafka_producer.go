package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/export"
	"github.com/khoahotran/cvos/pkg/logger"
)

const (
	TopicProfileExports = "profile.exports"
	ExportConsumerGroup = "profile-export-group"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	exportWriter messageWriter
	logger       logger.Logger
}

func exportTopic(cfg config.Config) string {
	if cfg.Kafka.ExportTopic != "" {
		return cfg.Kafka.ExportTopic
	}
	return TopicProfileExports
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	exportWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  exportTopic(cfg),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.String("topic", exportWriter.Topic))
	return &KafkaProducerClient{exportWriter: exportWriter, logger: log}, nil
}

// PublishExportRequested keys the message by owner so that one owner's
// exports stay ordered on a single partition.
func (c *KafkaProducerClient) PublishExportRequested(ctx context.Context, req export.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal export request: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(req.OwnerID.String()),
		Value: payload,
	}
	if err := c.exportWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish export request: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.exportWriter != nil {
		if err := c.exportWriter.Close(); err != nil {
			c.logger.Warn("Failed to close Kafka export writer", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
