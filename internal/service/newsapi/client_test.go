package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"WhaleEye/pkg/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.NewsConfig{
		NewsAPIKey: "key",
		BaseURL:    srv.URL + "/",
		PageSize:   10,
		Timeout:    2 * time.Second,
	})
}

func TestArticles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v2/everything" || q.Get("q") != "btc AND (x)" || q.Get("sortBy") != "publishedAt" ||
			q.Get("pageSize") != "10" || q.Get("apiKey") != "key" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[
			{"source":{"id":null,"name":"CoinDesk"},"title":"BTC rallies","description":"desc","url":"https://x/1","publishedAt":"2024-05-01T10:00:00Z"}
		]}`))
	})

	got, err := c.Articles(context.Background(), "btc AND (x)")
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d articles", len(got))
	}
	a := got[0]
	if a.Title != "BTC rallies" || a.Source != "CoinDesk" || a.URL != "https://x/1" || a.PublishedAt != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected article %+v", a)
	}
}

func TestArticlesErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
	})
	if _, err := c.Articles(context.Background(), "q"); err == nil {
		t.Fatalf("expected error for status=error")
	}
}

func TestArticlesHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":"error","code":"rateLimited"}`))
	})
	if _, err := c.Articles(context.Background(), "q"); err == nil {
		t.Fatalf("expected error for 429")
	}
}
