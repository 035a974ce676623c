package usecase

import (
	"context"
	"fmt"
	"time"

	"WhaleEye/internal/domain/models"
	domrepo "WhaleEye/internal/domain/repository"
	"WhaleEye/internal/services/whale"
	applogger "WhaleEye/pkg/logger"
)

// WhaleAnalyzer implements service.WhaleAnalyzer over a live and a fixture transaction source.
type WhaleAnalyzer struct {
	live    domrepo.TransactionSource
	mock    domrepo.TransactionSource
	fs      failSoft
	metrics domrepo.Metrics
}

// NewWhaleAnalyzer builds the analyzer. live may be nil when no API key is configured.
func NewWhaleAnalyzer(
	live domrepo.TransactionSource,
	mock domrepo.TransactionSource,
	quota domrepo.QuotaGuard,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *WhaleAnalyzer {
	return &WhaleAnalyzer{
		live:    live,
		mock:    mock,
		metrics: metrics,
		fs: failSoft{
			provider: "etherscan",
			quota:    quota,
			metrics:  metrics,
			logger:   logger,
		},
	}
}

// Analyze never surfaces provider errors: they are replaced by fixture data
// for the same wallet.
func (a *WhaleAnalyzer) Analyze(ctx context.Context, wallet string, role models.Role) (*models.AnalysisResponse, error) {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("whale_analyze", time.Since(start).Seconds()) }()

	var live fetchFunc[*models.TransactionSet]
	if a.live != nil {
		live = func(ctx context.Context) (*models.TransactionSet, error) {
			return a.live.Transactions(ctx, wallet)
		}
	}
	mock := func(ctx context.Context) (*models.TransactionSet, error) {
		return a.mock.Transactions(ctx, wallet)
	}

	set, usedMock, err := resolve(ctx, a.fs, live, mock)
	if err != nil {
		a.metrics.RecordError("whale_mock")
		return nil, fmt.Errorf("mock transactions: %w", err)
	}

	patterns := whale.DetectPatterns(set.Transactions)
	a.metrics.RecordQuery("whale-analyzer", string(role.Normalize()))

	txs := set.Transactions
	if txs == nil {
		txs = []models.Transaction{}
	}
	return &models.AnalysisResponse{
		Wallet:       wallet,
		Transactions: txs,
		Patterns:     patterns,
		Insights:     whale.GenerateInsights(patterns),
		AvgGasFee:    set.AvgGasFee,
		Mock:         usedMock,
	}, nil
}
