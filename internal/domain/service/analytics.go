package service

import (
	"context"

	"WhaleEye/internal/domain/models"
)

// WhaleAnalyzer derives patterns and role insights from a wallet's recent transactions.
type WhaleAnalyzer interface {
	Analyze(ctx context.Context, wallet string, role models.Role) (*models.AnalysisResponse, error)
}

// NewsAnalyst classifies recent crypto news and derives themes and role insights.
// query is the user's free text; it may be empty.
type NewsAnalyst interface {
	Analyze(ctx context.Context, role models.Role, query string) (*models.NewsResponse, error)
}
