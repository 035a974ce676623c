package whale

import (
	"strings"

	"WhaleEye/internal/domain/models"
)

const (
	PatternHeavyETH      = "Heavy ETH activity"
	PatternLargeVolume   = "Large volume transactions"
	PatternHighFrequency = "High transaction frequency"
	PatternAccumulating  = "Accumulating ETH"
	PatternDistributing  = "Distributing assets"
	PatternNormal        = "Normal trading activity"
)

// LargeVolumeThreshold is the display-unit amount above which a transaction counts as large.
const LargeVolumeThreshold = 100

// DetectPatterns evaluates every predicate independently over txs.
// Exactly one of PatternAccumulating or PatternDistributing is always present.
func DetectPatterns(txs []models.Transaction) []string {
	n := len(txs)
	var eth, inbound int
	large := false
	for _, tx := range txs {
		if strings.Contains(tx.Type, "ETH") {
			eth++
		}
		if strings.Contains(tx.Type, "Received") {
			inbound++
		}
		if v, ok := ParseAmount(tx.Amount); ok && v.GreaterThan(largeVolume) {
			large = true
		}
	}

	patterns := make([]string, 0, 4)
	if atLeastPercent(eth, n, 70) {
		patterns = append(patterns, PatternHeavyETH)
	}
	if large {
		patterns = append(patterns, PatternLargeVolume)
	}
	if n > 3 {
		patterns = append(patterns, PatternHighFrequency)
	}
	if atLeastPercent(inbound, n, 60) {
		patterns = append(patterns, PatternAccumulating)
	} else {
		patterns = append(patterns, PatternDistributing)
	}

	if len(patterns) == 0 {
		return []string{PatternNormal}
	}
	return patterns
}

// atLeastPercent reports part/total >= pct/100 without floating point. An empty total is never a majority.
func atLeastPercent(part, total, pct int) bool {
	return total > 0 && part*100 >= total*pct
}

func hasPattern(patterns []string, p string) bool {
	for _, s := range patterns {
		if s == p {
			return true
		}
	}
	return false
}
