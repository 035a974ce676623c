package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"WhaleEye/internal/domain/models"
	pkgkafka "WhaleEye/pkg/kafka"

	"github.com/segmentio/kafka-go"
)

type captureWriter struct {
	msgs []kafka.Message
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestKafkaPublisherPublishQuery(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(pkgkafka.NewProducerWithWriter(w, "gzip"), "whaleeye.queries")

	ev := &models.QueryEvent{
		RequestID: "req-42",
		Role:      "trader",
		QueryType: models.QueryCombined,
		Wallet:    "0xabc",
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := p.PublishQuery(context.Background(), ev); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("got %d messages", len(w.msgs))
	}
	m := w.msgs[0]
	if m.Topic != "whaleeye.queries" || string(m.Key) != "req-42" {
		t.Fatalf("unexpected routing topic=%s key=%s", m.Topic, m.Key)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(m.Value, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["queryType"] != "combined" || got["requestId"] != "req-42" || got["whaleFallback"] != false {
		t.Fatalf("unexpected payload %v", got)
	}
}

func TestKafkaPublisherPublishMessage(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(pkgkafka.NewProducerWithWriter(w, "gzip"), "whaleeye.queries")

	if err := p.PublishMessage(context.Background(), "whaleeye.logs", []string{"a"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 || w.msgs[0].Topic != "whaleeye.logs" {
		t.Fatalf("unexpected messages %+v", w.msgs)
	}
}
