package models

// Sentiment is the market tone of an article.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// RawArticle is an article as delivered by an article source, before classification.
type RawArticle struct {
	Title       string
	Description string
	Source      string
	URL         string
	PublishedAt string
}

// Article is a classified article. Sentiment is set once at classification time.
type Article struct {
	Title       string    `json:"title"`
	Sentiment   Sentiment `json:"sentiment"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	PublishedAt string    `json:"publishedAt,omitempty"`
}

// NewsResponse is the news analyst result. Articles keep provider order.
type NewsResponse struct {
	Articles []Article `json:"articles"`
	Themes   []string  `json:"themes"`
	Insights Insights  `json:"insights"`

	// Mock is set when the result was built from fixture data.
	Mock bool `json:"-"`
}
