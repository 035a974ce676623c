package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishEncodesJSON(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriter(w, "gzip")

	payload := map[string]string{"role": "trader"}
	if err := p.Publish(context.Background(), "whaleeye.queries", []byte("req-1"), payload); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(w.msgs))
	}
	m := w.msgs[0]
	if m.Topic != "whaleeye.queries" || string(m.Key) != "req-1" {
		t.Fatalf("unexpected message routing: topic=%s key=%s", m.Topic, m.Key)
	}
	var got map[string]string
	if err := json.Unmarshal(m.Value, &got); err != nil {
		t.Fatalf("value is not JSON: %v", err)
	}
	if got["role"] != "trader" {
		t.Fatalf("got role %q", got["role"])
	}
}

func TestPublishBatchPassesRawBytes(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriter(w, "gzip")

	err := p.PublishBatch(context.Background(), "t", []Message{
		{Value: []byte("a")},
		{Value: "b"},
	})
	if err != nil {
		t.Fatalf("publish batch: %v", err)
	}
	if len(w.msgs) != 2 || string(w.msgs[0].Value) != "a" || string(w.msgs[1].Value) != "b" {
		t.Fatalf("unexpected messages: %+v", w.msgs)
	}
}

func TestPublishWrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := NewProducerWithWriter(&fakeWriter{err: boom}, "gzip")

	err := p.Publish(context.Background(), "t", nil, "x")
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped broker error", err)
	}
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	if _, err := NewProducer(); err == nil {
		t.Fatalf("expected error without brokers")
	}
}
