package whale

import "WhaleEye/internal/domain/models"

// GenerateInsights returns the insight for every role given the detected patterns.
func GenerateInsights(patterns []string) models.Insights {
	accumulating := hasPattern(patterns, PatternAccumulating)
	large := hasPattern(patterns, PatternLargeVolume)

	var ins models.Insights
	if accumulating && large {
		ins.Trader = "Possible pump incoming due to large ETH buys."
	} else {
		ins.Trader = "Monitor for breakout signals, current activity suggests consolidation."
	}

	if accumulating {
		ins.Investor = "Long-term wallet accumulation pattern detected."
	} else {
		ins.Investor = "Profit-taking behavior observed, consider entry opportunities."
	}

	ins.Analyst = "Clustered behavior with other whale addresses, institutional activity likely."
	return ins
}
