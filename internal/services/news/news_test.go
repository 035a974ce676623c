package news

import (
	"context"
	"reflect"
	"testing"

	"WhaleEye/internal/domain/models"
)

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		text string
		want models.Sentiment
	}{
		{"Bitcoin rally continues as ETF approval nears", models.SentimentBullish},
		{"Exchange hack triggers crash and lawsuit", models.SentimentBearish},
		{"Weekly recap", models.SentimentNeutral},
		{"Rally stalls on fraud warning", models.SentimentBearish},
		{"Surge meets crash", models.SentimentNeutral},
	}
	for _, tc := range cases {
		if got := ClassifySentiment(tc.text); got != tc.want {
			t.Errorf("ClassifySentiment(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifySentimentCountsKeywordOnce(t *testing.T) {
	// three "crash" occurrences must not outweigh two distinct bullish keywords
	text := "crash crash crash but rally and surge"
	if got := ClassifySentiment(text); got != models.SentimentBullish {
		t.Fatalf("got %s, want bullish", got)
	}
}

func TestClassifySentimentDeterministic(t *testing.T) {
	text := "SEC approves ETF while hack concerns linger"
	first := ClassifySentiment(text)
	for i := 0; i < 50; i++ {
		if got := ClassifySentiment(text); got != first {
			t.Fatalf("iteration %d: got %s, first %s", i, got, first)
		}
	}
}

func TestOverallSentiment(t *testing.T) {
	mk := func(s ...models.Sentiment) []models.Article {
		out := make([]models.Article, len(s))
		for i := range s {
			out[i].Sentiment = s[i]
		}
		return out
	}
	if got := OverallSentiment(mk(models.SentimentBullish, models.SentimentBearish)); got != models.SentimentNeutral {
		t.Fatalf("tie: got %s", got)
	}
	if got := OverallSentiment(mk(models.SentimentBullish, models.SentimentNeutral, models.SentimentNeutral)); got != models.SentimentBullish {
		t.Fatalf("bullish majority: got %s", got)
	}
	if got := OverallSentiment(nil); got != models.SentimentNeutral {
		t.Fatalf("empty: got %s", got)
	}
}

func TestExtractThemesOrderAndCap(t *testing.T) {
	// keywords appear in reverse declaration order
	articles := []models.Article{{
		Title:       "Blockchain node volatility",
		Description: "institutional staking of bitcoin via defi protocol after sec etf news",
	}}
	got := ExtractThemes(articles)
	want := []string{"ETF", "Regulation", "DeFi", "Bitcoin", "Ethereum"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractThemesSubsetOfKnown(t *testing.T) {
	known := map[string]bool{}
	for _, n := range ThemeNames() {
		known[n] = true
	}
	if len(known) != 8 {
		t.Fatalf("expected 8 theme categories, got %d", len(known))
	}

	inputs := []string{"", "market price", "smart contract consensus", "exchange-traded fund compliance"}
	for _, in := range inputs {
		got := ExtractThemes([]models.Article{{Title: in}})
		if len(got) > MaxThemes {
			t.Fatalf("%q: %d themes", in, len(got))
		}
		for _, th := range got {
			if !known[th] {
				t.Fatalf("%q: unknown theme %s", in, th)
			}
		}
	}
}

func TestBuildSearchQuery(t *testing.T) {
	if got := BuildSearchQuery(""); got != DefaultQuery {
		t.Fatalf("empty query: %s", got)
	}
	if got := BuildSearchQuery("what's up?"); got != DefaultQuery {
		t.Fatalf("no terms: %s", got)
	}
	got := BuildSearchQuery("Solana ETF news")
	want := "solana OR sol OR etf AND (" + DefaultQuery + ")"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractCryptoTermsCompactSpelling(t *testing.T) {
	got := ExtractCryptoTerms("YieldFarming returns")
	if !reflect.DeepEqual(got, []string{"yield farming"}) {
		t.Fatalf("got %v", got)
	}
}

func TestGenerateInsights(t *testing.T) {
	bullish := []models.Article{{Sentiment: models.SentimentBullish}}
	bearish := []models.Article{{Sentiment: models.SentimentBearish}}

	ins := GenerateInsights(bullish, []string{"ETF"})
	if ins.Trader != "Bullish ETH narrative, short-term buy signals detected." {
		t.Fatalf("bullish etf trader: %q", ins.Trader)
	}
	if ins.Investor != "Current themes suggest bullish long-term outlook." {
		t.Fatalf("bullish etf investor: %q", ins.Investor)
	}
	if ins.Analyst != "Market narrative shifting toward etf, monitor regulatory developments." {
		t.Fatalf("analyst: %q", ins.Analyst)
	}

	ins = GenerateInsights(bearish, []string{"Regulation"})
	if ins.Trader != "Regulatory concerns creating selling pressure, consider short positions." {
		t.Fatalf("bearish regulation trader: %q", ins.Trader)
	}

	ins = GenerateInsights(nil, []string{"Institutional Adoption"})
	if ins.Investor != "Institutional adoption trend supports long-term value thesis." {
		t.Fatalf("adoption investor: %q", ins.Investor)
	}

	ins = GenerateInsights(nil, nil)
	if ins.Analyst != "Market narrative shifting toward market dynamics, monitor regulatory developments." {
		t.Fatalf("no themes analyst: %q", ins.Analyst)
	}
}

func TestMockFixtureThroughPipeline(t *testing.T) {
	raw, err := NewMockSource().Articles(context.Background(), DefaultQuery)
	if err != nil {
		t.Fatalf("mock source: %v", err)
	}
	articles := Classify(raw, 6)

	gotSent := make([]models.Sentiment, len(articles))
	for i, a := range articles {
		gotSent[i] = a.Sentiment
	}
	wantSent := []models.Sentiment{
		models.SentimentBullish,
		models.SentimentBearish,
		models.SentimentBearish, // "security" contains "sec"
		models.SentimentBullish,
	}
	if !reflect.DeepEqual(gotSent, wantSent) {
		t.Fatalf("sentiments %v, want %v", gotSent, wantSent)
	}

	themeList := ExtractThemes(articles)
	if !reflect.DeepEqual(themeList, []string{"ETF", "Regulation", "DeFi", "Bitcoin", "Ethereum"}) {
		t.Fatalf("themes %v", themeList)
	}

	ins := GenerateInsights(articles, themeList)
	if ins.Trader != "Market sentiment is neutral, monitor for breakout signals." {
		t.Fatalf("trader: %q", ins.Trader)
	}
}

func TestClassifyLimit(t *testing.T) {
	raw := make([]models.RawArticle, 10)
	if got := Classify(raw, 6); len(got) != 6 {
		t.Fatalf("got %d articles", len(got))
	}
}
