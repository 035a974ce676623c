package news

import (
	"strings"

	"WhaleEye/internal/domain/models"
)

var bullishKeywords = []string{
	"approval", "approved", "etf", "adoption", "surge", "rally", "breakout",
	"bullish", "positive", "growth", "launch", "partnership", "investment",
	"breakthrough", "innovation", "revolutionary", "record high",
}

var bearishKeywords = []string{
	"investigation", "sec", "regulation", "crash", "drop", "decline", "bearish",
	"negative", "lawsuit", "hack", "exploit", "concern", "warning", "ban",
	"scrutiny", "crackdown", "fraud", "scam",
}

// ClassifySentiment labels text by counting distinct keyword hits. Keywords
// match as substrings of the lower-cased text and count once each.
func ClassifySentiment(text string) models.Sentiment {
	lower := strings.ToLower(text)
	bull := countHits(lower, bullishKeywords)
	bear := countHits(lower, bearishKeywords)

	switch {
	case bull > bear:
		return models.SentimentBullish
	case bear > bull:
		return models.SentimentBearish
	default:
		return models.SentimentNeutral
	}
}

// OverallSentiment is the majority of bullish against bearish articles. Ties are neutral.
func OverallSentiment(articles []models.Article) models.Sentiment {
	var bull, bear int
	for _, a := range articles {
		switch a.Sentiment {
		case models.SentimentBullish:
			bull++
		case models.SentimentBearish:
			bear++
		}
	}
	switch {
	case bull > bear:
		return models.SentimentBullish
	case bear > bull:
		return models.SentimentBearish
	default:
		return models.SentimentNeutral
	}
}

// Classify turns raw articles into classified ones, keeping order and at most limit entries.
func Classify(raw []models.RawArticle, limit int) []models.Article {
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}
	out := make([]models.Article, 0, len(raw))
	for _, r := range raw {
		out = append(out, models.Article{
			Title:       r.Title,
			Sentiment:   ClassifySentiment(r.Title + " " + r.Description),
			Source:      r.Source,
			URL:         r.URL,
			Description: r.Description,
			PublishedAt: r.PublishedAt,
		})
	}
	return out
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
