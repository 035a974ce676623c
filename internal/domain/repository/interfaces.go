package repository

import (
	"context"

	"WhaleEye/internal/domain/models"
)

// TransactionSource yields the recent transactions of a wallet, newest first.
// The Etherscan client and the fixture source both implement it.
type TransactionSource interface {
	Name() string
	Transactions(ctx context.Context, wallet string) (*models.TransactionSet, error)
}

// ArticleSource yields recent articles for a search string in provider order.
// The NewsAPI client and the fixture source both implement it.
type ArticleSource interface {
	Name() string
	Articles(ctx context.Context, search string) ([]models.RawArticle, error)
}

// QuotaGuard is consulted before every outbound provider call.
type QuotaGuard interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// EventPublisher ships query events to the event stream.
type EventPublisher interface {
	PublishQuery(ctx context.Context, ev *models.QueryEvent) error
	Close() error
}

type Metrics interface {
	RecordQuery(endpoint, queryType string)
	RecordFallback(provider, reason string)
	RecordSentiment(sentiment string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
