package intent

import (
	"regexp"
	"strings"

	"WhaleEye/internal/domain/models"
)

var (
	walletRe   = regexp.MustCompile(`0x[a-fA-F0-9]{40}`)
	newsTermRe = regexp.MustCompile(`\b(news|sentiment|market|headlines|crypto news|analysis|bullish|bearish|articles|price|trend|outlook|forecast|update|intelligence|feed|narrative|theme)\b`)
)

// Classify maps a message to a query type from two independent signals: an
// embedded wallet address and a news-related keyword.
func Classify(message string) models.QueryType {
	hasWallet := walletRe.MatchString(message)
	hasNews := newsTermRe.MatchString(strings.ToLower(message))

	switch {
	case hasWallet && hasNews:
		return models.QueryCombined
	case hasWallet:
		return models.QueryWhale
	case hasNews:
		return models.QueryNews
	default:
		return models.QueryGeneral
	}
}

// ExtractWallet returns the first wallet address in message, or def.
func ExtractWallet(message, def string) string {
	if m := walletRe.FindString(message); m != "" {
		return m
	}
	return def
}
