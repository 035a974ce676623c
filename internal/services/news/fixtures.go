package news

import (
	"context"

	"WhaleEye/internal/domain/models"
)

var mockArticles = []models.RawArticle{
	{
		Title:       "Ethereum ETF Approved by SEC",
		Description: "Major breakthrough for institutional adoption as SEC approves first Ethereum ETF.",
		Source:      "CoinDesk",
		URL:         "https://coindesk.com/ethereum-etf-approved",
	},
	{
		Title:       "SEC Investigates Major Cryptocurrency Exchange",
		Description: "Regulatory scrutiny intensifies as SEC launches investigation into leading exchange.",
		Source:      "Bloomberg",
		URL:         "https://bloomberg.com/sec-investigation",
	},
	{
		Title:       "Bitcoin Mining Difficulty Reaches All-Time High",
		Description: "Network security strengthens as mining difficulty adjustment reaches new record.",
		Source:      "CryptoPanic",
		URL:         "https://cryptopanic.com/mining-difficulty",
	},
	{
		Title:       "DeFi Protocol Launches Revolutionary Yield Strategy",
		Description: "New protocol promises sustainable high yields through innovative staking mechanism.",
		Source:      "DeFiPulse",
		URL:         "https://defipulse.com/yield-strategy",
	},
}

// MockSource serves a fixed set of four articles regardless of the search string.
type MockSource struct{}

func NewMockSource() *MockSource { return &MockSource{} }

func (MockSource) Name() string { return "mock" }

func (MockSource) Articles(_ context.Context, _ string) ([]models.RawArticle, error) {
	out := make([]models.RawArticle, len(mockArticles))
	copy(out, mockArticles)
	return out, nil
}
