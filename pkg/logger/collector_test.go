package logger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type capturePublisher struct {
	mu      sync.Mutex
	batches [][]AggregatedLogEntry
	topic   string
}

func (p *capturePublisher) PublishMessage(_ context.Context, topic string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	p.batches = append(p.batches, payload.([]AggregatedLogEntry))
	return nil
}

func (p *capturePublisher) entries() []AggregatedLogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []AggregatedLogEntry
	for _, b := range p.batches {
		out = append(out, b...)
	}
	return out
}

func TestCollectorAggregatesDuplicates(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 10, Topic: "logs", Publisher: pub})

	fields := map[string]interface{}{"provider": "etherscan"}
	c.AddLog("error", "provider failed", fields, "a.go:1")
	c.AddLog("error", "provider failed", fields, "a.go:1")
	c.AddLog("error", "other failure", nil, "b.go:2")

	if got := c.Pending(); got != 2 {
		t.Fatalf("expected 2 distinct entries, got %d", got)
	}

	c.Close()

	entries := pub.entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 published entries, got %d", len(entries))
	}
	if pub.topic != "logs" {
		t.Fatalf("unexpected topic %q", pub.topic)
	}
	for _, e := range entries {
		if e.Message == "provider failed" && e.Count != 2 {
			t.Fatalf("expected count 2, got %d", e.Count)
		}
	}
}

func TestCollectorFlushesAtThreshold(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 2, Topic: "logs", Publisher: pub})
	defer c.Close()

	c.AddLog("error", "one", nil, "x")
	c.AddLog("error", "two", nil, "x")

	if got := c.Pending(); got != 0 {
		t.Fatalf("expected flush at threshold, %d pending", got)
	}
}

func TestLoggerErrorFeedsCollector(t *testing.T) {
	pub := &capturePublisher{}
	l := Nop()
	l.AddCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 100, Topic: "logs", Publisher: pub})

	l.Error("upstream exploded", Error(errors.New("boom")), String("provider", "newsapi"))
	l.Warn("warnings are not collected")
	l.RemoveCollector()

	entries := pub.entries()
	if len(entries) != 1 || entries[0].Message != "upstream exploded" {
		t.Fatalf("unexpected collected entries %+v", entries)
	}
	if entries[0].Fields["provider"] != "newsapi" {
		t.Fatalf("expected provider field, got %+v", entries[0].Fields)
	}
}
