package repository

import (
	"context"

	"WhaleEye/internal/domain/models"
	"WhaleEye/internal/domain/repository"
	pkgkafka "WhaleEye/pkg/kafka"
)

// KafkaPublisher implements EventPublisher for Kafka. It also serves as the
// log collector sink.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates Kafka publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// PublishQuery writes ev keyed by request id.
func (p *KafkaPublisher) PublishQuery(ctx context.Context, ev *models.QueryEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(ev.RequestID), ev)
}

// PublishMessage writes an arbitrary JSON payload to topic.
func (p *KafkaPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NoopPublisher drops every event. Used when the event stream is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishQuery(context.Context, *models.QueryEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }

var (
	_ repository.EventPublisher = (*KafkaPublisher)(nil)
	_ repository.EventPublisher = NoopPublisher{}
)
