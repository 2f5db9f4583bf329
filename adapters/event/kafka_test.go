package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/export"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/logger"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error { return nil }

func TestPublishExportRequested_RoundTrip(t *testing.T) {
	w := &recordingWriter{}
	c := &KafkaProducerClient{exportWriter: w, logger: logger.NewNop()}
	owner := uuid.New()
	p := profile.New()
	p.FullName = "Jane Doe"

	req := export.Request{
		EventType:   export.EventTypeRequested,
		OwnerID:     owner,
		Profile:     p,
		Locale:      "es",
		RequestedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.PublishExportRequested(context.Background(), req))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, owner.String(), string(w.msgs[0].Key))

	got, err := DecodeExportRequest(w.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestPublishExportRequested_WriterError(t *testing.T) {
	c := &KafkaProducerClient{exportWriter: &recordingWriter{err: errors.New("leader not available")}, logger: logger.NewNop()}
	err := c.PublishExportRequested(context.Background(), export.Request{OwnerID: uuid.New(), Profile: profile.New()})
	assert.Error(t, err)
}

func TestDecodeExportRequest_Invalid(t *testing.T) {
	_, err := DecodeExportRequest(kafka.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}
