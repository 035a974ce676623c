package news

import (
	"strings"

	"WhaleEye/internal/domain/models"
)

// MaxThemes caps the theme list.
const MaxThemes = 5

type theme struct {
	name     string
	keywords []string
}

// themes are checked in declaration order; the output keeps that order.
var themes = []theme{
	{"ETF", []string{"etf", "exchange-traded fund"}},
	{"Regulation", []string{"sec", "regulation", "regulatory", "compliance", "investigation"}},
	{"DeFi", []string{"defi", "decentralized finance", "yield", "liquidity", "protocol"}},
	{"Bitcoin", []string{"bitcoin", "btc", "mining", "halving"}},
	{"Ethereum", []string{"ethereum", "eth", "staking", "merge", "layer 2"}},
	{"Institutional Adoption", []string{"institutional", "corporate", "enterprise", "adoption"}},
	{"Market Analysis", []string{"price", "market", "trading", "volume", "volatility"}},
	{"Technology", []string{"blockchain", "smart contract", "consensus", "node"}},
}

// ExtractThemes tags the batch with every theme whose keywords occur anywhere
// in the titles and descriptions, capped at MaxThemes.
func ExtractThemes(articles []models.Article) []string {
	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString(a.Title)
		sb.WriteByte(' ')
		sb.WriteString(a.Description)
		sb.WriteByte(' ')
	}
	corpus := strings.ToLower(sb.String())

	out := make([]string, 0, MaxThemes)
	for _, t := range themes {
		if len(out) == MaxThemes {
			break
		}
		for _, k := range t.keywords {
			if strings.Contains(corpus, k) {
				out = append(out, t.name)
				break
			}
		}
	}
	return out
}

// ThemeNames lists every known theme in declaration order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.name
	}
	return names
}

func hasTheme(list []string, name string) bool {
	for _, t := range list {
		if t == name {
			return true
		}
	}
	return false
}
