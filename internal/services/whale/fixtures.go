package whale

import (
	"context"
	"time"

	"WhaleEye/internal/domain/models"
	"WhaleEye/pkg/util"
)

// MockAvgGasFee is the gas fee reported by the fixture source.
const MockAvgGasFee = "0.012 ETH"

// MockSource serves the same three transactions for every wallet. Timestamps
// are relative to the injected clock so responses are reproducible in tests.
type MockSource struct {
	now func() time.Time
}

func NewMockSource() *MockSource {
	return &MockSource{now: time.Now}
}

// NewMockSourceAt pins the fixture clock.
func NewMockSourceAt(now func() time.Time) *MockSource {
	return &MockSource{now: now}
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Transactions(_ context.Context, _ string) (*models.TransactionSet, error) {
	now := m.now()
	return &models.TransactionSet{
		Transactions: []models.Transaction{
			{
				Hash:         "0x123abc",
				Type:         "ETH Received",
				Amount:       "500 ETH",
				Counterparty: "0xabc123",
				Timestamp:    util.ISOTime(now.Add(-1 * time.Hour)),
			},
			{
				Hash:         "0x456def",
				Type:         "Token Swap",
				Amount:       "1,200,000 USDT",
				Counterparty: "Uniswap",
				Timestamp:    util.ISOTime(now.Add(-2 * time.Hour)),
			},
			{
				Hash:         "0x789ghi",
				Type:         "ETH Received",
				Amount:       "750 ETH",
				Counterparty: "0xdef456",
				Timestamp:    util.ISOTime(now.Add(-3 * time.Hour)),
			},
		},
		AvgGasFee: MockAvgGasFee,
	}, nil
}
