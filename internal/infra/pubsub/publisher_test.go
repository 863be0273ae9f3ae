package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		RequestID: "req-1",
		OrderID:   "ORD-loyw3v28",
		Name:      "Rana",
		ItemCount: 2,
		Subtotal:  2000,
		Discount:  200,
		Total:     1800,
		Coupon:    "SAVE10",
		Backend:   "local",
		CreatedAt: 1_700_000_000_000,
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "ORD-loyw3v28", got.Message.MessageID)
	assert.Equal(t, orderPlacedType, got.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, int64(1800), event.Total)
	assert.Equal(t, "SAVE10", event.Coupon)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderPlaced(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "503")
}

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByOrderID(t *testing.T) {
	writer := &recordingWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: discardLogger()}

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), sampleEvent()))
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, "ORD-loyw3v28", string(msg.Key))
	assert.Equal(t, time.UnixMilli(1_700_000_000_000), msg.Time)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, "local", headers["backend"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	publisher := &kafkaPublisher{writer: &recordingWriter{err: errors.New("leader not available")}, logger: discardLogger()}

	err := publisher.PublishOrderPlaced(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "failed to write message to kafka")
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config is noop", cfg: nil},
		{name: "empty provider is noop", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "orders"}},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: "kafka", KafkaTopic: "orders"}, wantErr: "at least one broker"},
		{name: "kafka without topic", cfg: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: []string{"b:9092"}}, wantErr: "topic is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "sqs"}, wantErr: "unknown pubsub provider: sqs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := Open(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := Open(context.Background(), nil, discardLogger())
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), sampleEvent()))
}
