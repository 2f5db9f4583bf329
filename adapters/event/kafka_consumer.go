package event

import (
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/export"
)

func NewExportReader(cfg config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    exportTopic(cfg),
		GroupID:  ExportConsumerGroup,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
}

func DecodeExportRequest(msg kafka.Message) (export.Request, error) {
	var req export.Request
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		return export.Request{}, fmt.Errorf("decode export request: %w", err)
	}
	req.Profile = req.Profile.Normalize()
	return req, nil
}
