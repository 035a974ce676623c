package usecase

import (
	"fmt"
	"strings"

	"WhaleEye/internal/domain/models"
	"WhaleEye/pkg/util"

	"github.com/russross/blackfriday/v2"
)

const generalReply = `I can help you analyze crypto wallets and news. Try asking me to "analyze wallet 0x..." or "get latest crypto news" or combine both requests.`

// headlines and latest transactions shown in a reply
const listLimit = 3

func renderWhale(data *models.AnalysisResponse, role models.Role, wallet string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🐋 **Whale Analysis for %s**\n\n", util.ShortHex(wallet, 6, 4))
	fmt.Fprintf(&b, "**Recent Activity:** %d transactions analyzed\n", len(data.Transactions))
	fmt.Fprintf(&b, "**Key Patterns:** %s\n", strings.Join(data.Patterns, ", "))
	fmt.Fprintf(&b, "**Average Gas:** %s\n\n", data.AvgGasFee)
	fmt.Fprintf(&b, "**%s Insight:** %s\n\n", role.Title(), data.Insights.For(role))
	b.WriteString("**Latest Transactions:**")
	for i, tx := range data.Transactions {
		if i == listLimit {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s: %s → %s...", i+1, tx.Type, tx.Amount, util.Prefix(tx.Counterparty, 6))
	}
	return b.String()
}

func renderNews(data *models.NewsResponse, role models.Role) string {
	var b strings.Builder
	b.WriteString("📰 **Crypto News Analysis**\n\n")
	fmt.Fprintf(&b, "**Key Themes:** %s\n", strings.Join(data.Themes, ", "))
	fmt.Fprintf(&b, "**Articles Analyzed:** %d\n\n", len(data.Articles))
	fmt.Fprintf(&b, "**%s Insight:** %s\n\n", role.Title(), data.Insights.For(role))
	b.WriteString("**Top Headlines:**")
	for i, a := range data.Articles {
		if i == listLimit {
			break
		}
		fmt.Fprintf(&b, "\n%d. [%s] %s - %s", i+1, strings.ToUpper(string(a.Sentiment)), a.Title, a.Source)
	}
	return b.String()
}

// renderCombined renders each side independently; a nil side reads as unavailable.
func renderCombined(whaleData *models.AnalysisResponse, newsData *models.NewsResponse, role models.Role) string {
	whaleSection := "🐋 **Whale Activity:** Analysis unavailable"
	whaleInsight := "No whale insights available."
	if whaleData != nil {
		whaleSection = "🐋 **Whale Activity:** " + strings.Join(whaleData.Patterns, ", ")
		whaleInsight = whaleData.Insights.For(role)
	}

	newsSection := "📰 **Market Sentiment:** News analysis unavailable"
	newsInsight := "No news insights available."
	if newsData != nil {
		newsSection = "📰 **Market Sentiment:** " + strings.Join(newsData.Themes, ", ")
		newsInsight = newsData.Insights.For(role)
	}

	return fmt.Sprintf(`🔍 **Combined Analysis for %s**

%s
%s

**Correlation Analysis:**
- Whale: %s
- News: %s

**Recommendation:** Monitor both whale movements and news sentiment for comprehensive market understanding.`,
		role.Title(), whaleSection, newsSection, whaleInsight, newsInsight)
}

var mockWhaleInsights = models.Insights{
	Trader:   "Possible pump incoming due to large ETH buys.",
	Investor: "Long-term wallet accumulation pattern detected.",
	Analyst:  "Clustered behavior with other whale addresses.",
}

var mockNewsInsights = models.Insights{
	Trader:   "Bullish ETH narrative, short-term buy signals detected.",
	Investor: "Regulation could cause long-term volatility.",
	Analyst:  "Market narrative shifting toward institutional adoption.",
}

// renderMockWhale is the reply when the whale analyzer itself could not be reached.
func renderMockWhale(wallet string, role models.Role) string {
	return fmt.Sprintf(`🐋 **Whale Analysis for %s**

**Recent Activity:** 3 transactions analyzed
**Key Patterns:** Accumulating ETH, Large volume transactions
**Average Gas:** 0.012 ETH

**%s Insight:** %s

**Latest Transactions:**
1. ETH Transfer: 500 ETH → 0xabc1...
2. Token Swap: 1,200,000 USDT → Uniswap
3. ETH Transfer: 750 ETH → 0xdef4...`,
		util.ShortHex(wallet, 6, 4), role.Title(), mockWhaleInsights.For(role))
}

// renderMockNews is the reply when the news analyst itself could not be reached.
func renderMockNews(role models.Role) string {
	return fmt.Sprintf(`📰 **Crypto News Analysis**

**Key Themes:** Ethereum ETF, Regulation, DeFi Innovation
**Articles Analyzed:** 4

**%s Insight:** %s

**Top Headlines:**
1. [BULLISH] Ethereum ETF Approved by SEC - CoinDesk
2. [BEARISH] SEC Investigates Major Cryptocurrency Exchange - Bloomberg
3. [NEUTRAL] Bitcoin Mining Difficulty Reaches All-Time High - CryptoPanic`,
		role.Title(), mockNewsInsights.For(role))
}

// ToHTML renders a markdown reply as an HTML fragment. Newlines are kept as line breaks.
func ToHTML(md string) string {
	out := blackfriday.Run([]byte(md),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak))
	return strings.TrimSpace(string(out))
}
