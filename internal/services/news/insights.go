package news

import (
	"fmt"
	"strings"

	"WhaleEye/internal/domain/models"
)

// GenerateInsights returns the insight for every role from the overall
// sentiment of articles and the extracted themes.
func GenerateInsights(articles []models.Article, themeList []string) models.Insights {
	overall := OverallSentiment(articles)

	var ins models.Insights
	switch {
	case overall == models.SentimentBullish && hasTheme(themeList, "ETF"):
		ins.Trader = "Bullish ETH narrative, short-term buy signals detected."
	case overall == models.SentimentBearish && hasTheme(themeList, "Regulation"):
		ins.Trader = "Regulatory concerns creating selling pressure, consider short positions."
	default:
		ins.Trader = fmt.Sprintf("Market sentiment is %s, monitor for breakout signals.", overall)
	}

	switch {
	case hasTheme(themeList, "Regulation"):
		ins.Investor = "Regulation could cause long-term volatility, maintain diversified portfolio."
	case hasTheme(themeList, "Institutional Adoption"):
		ins.Investor = "Institutional adoption trend supports long-term value thesis."
	default:
		ins.Investor = fmt.Sprintf("Current themes suggest %s long-term outlook.", overall)
	}

	mainTheme := "Market Dynamics"
	if len(themeList) > 0 {
		mainTheme = themeList[0]
	}
	ins.Analyst = fmt.Sprintf("Market narrative shifting toward %s, monitor regulatory developments.", strings.ToLower(mainTheme))
	return ins
}
