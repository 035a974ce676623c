package remote

import (
	"context"

	"WhaleEye/internal/domain/models"
	domsvc "WhaleEye/internal/domain/service"
)

// WhaleClient calls a remote /whale-analyzer endpoint.
type WhaleClient struct {
	base *HTTPServiceBase
}

func NewWhaleClient(base *HTTPServiceBase) *WhaleClient {
	return &WhaleClient{base: base}
}

func (c *WhaleClient) Analyze(ctx context.Context, wallet string, role models.Role) (*models.AnalysisResponse, error) {
	var out models.AnalysisResponse
	req := models.WhaleAnalyzerRequest{WalletAddress: wallet, Role: role}
	if err := c.base.PostJSON(ctx, "/whale-analyzer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewsClient calls a remote /news-analyst endpoint.
type NewsClient struct {
	base *HTTPServiceBase
}

func NewNewsClient(base *HTTPServiceBase) *NewsClient {
	return &NewsClient{base: base}
}

func (c *NewsClient) Analyze(ctx context.Context, role models.Role, query string) (*models.NewsResponse, error) {
	var out models.NewsResponse
	req := models.NewsAnalystRequest{Role: role, Query: query}
	if err := c.base.PostJSON(ctx, "/news-analyst", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var (
	_ domsvc.WhaleAnalyzer = (*WhaleClient)(nil)
	_ domsvc.NewsAnalyst   = (*NewsClient)(nil)
)
