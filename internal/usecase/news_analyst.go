package usecase

import (
	"context"
	"fmt"
	"time"

	"WhaleEye/internal/domain/models"
	domrepo "WhaleEye/internal/domain/repository"
	"WhaleEye/internal/services/news"
	applogger "WhaleEye/pkg/logger"
)

// NewsAnalyst implements service.NewsAnalyst over a live and a fixture article source.
type NewsAnalyst struct {
	live         domrepo.ArticleSource
	mock         domrepo.ArticleSource
	articleLimit int
	fs           failSoft
	metrics      domrepo.Metrics
}

// NewNewsAnalyst builds the analyst. live may be nil when no API key is configured.
func NewNewsAnalyst(
	live domrepo.ArticleSource,
	mock domrepo.ArticleSource,
	articleLimit int,
	quota domrepo.QuotaGuard,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *NewsAnalyst {
	return &NewsAnalyst{
		live:         live,
		mock:         mock,
		articleLimit: articleLimit,
		metrics:      metrics,
		fs: failSoft{
			provider: "newsapi",
			quota:    quota,
			metrics:  metrics,
			logger:   logger,
		},
	}
}

// Analyze classifies the newest articles for query. Provider errors are
// replaced by fixture articles, which go through the same classification.
func (a *NewsAnalyst) Analyze(ctx context.Context, role models.Role, query string) (*models.NewsResponse, error) {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("news_analyze", time.Since(start).Seconds()) }()

	search := news.BuildSearchQuery(query)

	var live fetchFunc[[]models.RawArticle]
	if a.live != nil {
		live = func(ctx context.Context) ([]models.RawArticle, error) {
			return a.live.Articles(ctx, search)
		}
	}
	mock := func(ctx context.Context) ([]models.RawArticle, error) {
		return a.mock.Articles(ctx, search)
	}

	raw, usedMock, err := resolve(ctx, a.fs, live, mock)
	if err != nil {
		a.metrics.RecordError("news_mock")
		return nil, fmt.Errorf("mock articles: %w", err)
	}

	articles := news.Classify(raw, a.articleLimit)
	themes := news.ExtractThemes(articles)
	a.metrics.RecordSentiment(string(news.OverallSentiment(articles)))
	a.metrics.RecordQuery("news-analyst", string(role.Normalize()))

	return &models.NewsResponse{
		Articles: articles,
		Themes:   themes,
		Insights: news.GenerateInsights(articles, themes),
		Mock:     usedMock,
	}, nil
}
