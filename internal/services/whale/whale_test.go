package whale

import (
	"context"
	"reflect"
	"testing"
	"time"

	"WhaleEye/internal/domain/models"
)

func tx(typ, amount string) models.Transaction {
	return models.Transaction{Hash: "0x1", Type: typ, Amount: amount, Counterparty: "0x2"}
}

func TestDetectPatterns(t *testing.T) {
	cases := []struct {
		name string
		txs  []models.Transaction
		want []string
	}{
		{
			name: "empty set distributes",
			txs:  nil,
			want: []string{PatternDistributing},
		},
		{
			name: "all inbound large and frequent",
			txs: []models.Transaction{
				tx("ETH Received", "150.0000 ETH"),
				tx("ETH Received", "1.0000 ETH"),
				tx("ETH Received", "2.0000 ETH"),
				tx("ETH Received", "3.0000 ETH"),
			},
			want: []string{PatternHeavyETH, PatternLargeVolume, PatternHighFrequency, PatternAccumulating},
		},
		{
			name: "outbound small",
			txs: []models.Transaction{
				tx("ETH Transfer", "0.5000 ETH"),
				tx("ETH Transfer", "0.2000 ETH"),
			},
			want: []string{PatternHeavyETH, PatternDistributing},
		},
		{
			name: "exactly sixty percent inbound accumulates",
			txs: []models.Transaction{
				tx("ETH Received", "1 ETH"),
				tx("ETH Received", "1 ETH"),
				tx("ETH Received", "1 ETH"),
				tx("Token Swap", "10 USDT"),
				tx("Token Swap", "10 USDT"),
			},
			want: []string{PatternHighFrequency, PatternAccumulating},
		},
		{
			name: "amount exactly at threshold is not large",
			txs:  []models.Transaction{tx("Token Swap", "100 USDT")},
			want: []string{PatternDistributing},
		},
		{
			name: "thousands separators are parsed",
			txs:  []models.Transaction{tx("Token Swap", "1,200,000 USDT")},
			want: []string{PatternLargeVolume, PatternDistributing},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectPatterns(tc.txs)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAccumulatingAndDistributingAreExclusive(t *testing.T) {
	types := []string{"ETH Received", "ETH Transfer", "Token Swap"}
	// every combination of up to four transactions
	var sets [][]models.Transaction
	var build func(cur []models.Transaction)
	build = func(cur []models.Transaction) {
		sets = append(sets, append([]models.Transaction(nil), cur...))
		if len(cur) == 4 {
			return
		}
		for _, typ := range types {
			build(append(cur, tx(typ, "1 ETH")))
		}
	}
	build(nil)

	for _, set := range sets {
		p := DetectPatterns(set)
		acc := hasPattern(p, PatternAccumulating)
		dist := hasPattern(p, PatternDistributing)
		if acc == dist {
			t.Fatalf("set %v: accumulating=%v distributing=%v", set, acc, dist)
		}
		if len(p) == 0 {
			t.Fatalf("set %v: empty pattern list", set)
		}
	}
}

func TestGenerateInsights(t *testing.T) {
	ins := GenerateInsights([]string{PatternLargeVolume, PatternAccumulating})
	if ins.Trader != "Possible pump incoming due to large ETH buys." {
		t.Fatalf("trader: %q", ins.Trader)
	}
	if ins.Investor != "Long-term wallet accumulation pattern detected." {
		t.Fatalf("investor: %q", ins.Investor)
	}

	ins = GenerateInsights([]string{PatternAccumulating})
	if ins.Trader != "Monitor for breakout signals, current activity suggests consolidation." {
		t.Fatalf("trader without large volume: %q", ins.Trader)
	}

	ins = GenerateInsights([]string{PatternDistributing})
	if ins.Investor != "Profit-taking behavior observed, consider entry opportunities." {
		t.Fatalf("investor distributing: %q", ins.Investor)
	}
	if ins.Analyst != "Clustered behavior with other whale addresses, institutional activity likely." {
		t.Fatalf("analyst: %q", ins.Analyst)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"500 ETH":        "500",
		"0.1234 ETH":     "0.1234",
		"1,200,000 USDT": "1200000",
	}
	for in, want := range cases {
		got, ok := ParseAmount(in)
		if !ok || got.String() != want {
			t.Fatalf("ParseAmount(%q) = %s, %v; want %s", in, got, ok, want)
		}
	}
	if _, ok := ParseAmount(""); ok {
		t.Fatalf("empty amount parsed")
	}
	if _, ok := ParseAmount("lots ETH"); ok {
		t.Fatalf("non-numeric amount parsed")
	}
}

func TestMockSourceIsDeterministic(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	src := NewMockSourceAt(func() time.Time { return now })

	set, err := src.Transactions(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("mock source: %v", err)
	}
	if len(set.Transactions) != 3 || set.AvgGasFee != MockAvgGasFee {
		t.Fatalf("unexpected fixture: %+v", set)
	}
	if set.Transactions[0].Timestamp != "2024-05-01T11:00:00.000Z" {
		t.Fatalf("unexpected timestamp %s", set.Transactions[0].Timestamp)
	}

	got := DetectPatterns(set.Transactions)
	want := []string{PatternLargeVolume, PatternAccumulating}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fixture patterns %v, want %v", got, want)
	}
}
