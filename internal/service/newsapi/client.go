package newsapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"WhaleEye/internal/domain/models"
	"WhaleEye/pkg/config"
	xhttp "WhaleEye/pkg/http"
)

// Client searches NewsAPI's /v2/everything endpoint.
type Client struct {
	baseURL  string
	apiKey   string
	pageSize int
	client   *xhttp.Client
}

func New(cfg config.NewsConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.NewsAPIKey,
		pageSize: cfg.PageSize,
		client:   xhttp.NewClient(xhttp.WithTimeout(cfg.Timeout)),
	}
}

func (c *Client) Name() string { return "newsapi" }

type everythingResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Articles returns the newest articles matching search, newest first.
func (c *Client) Articles(ctx context.Context, search string) ([]models.RawArticle, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news API key not configured")
	}

	var out everythingResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v2/everything",
		QueryParams: map[string][]string{
			"q":        {search},
			"sortBy":   {"publishedAt"},
			"pageSize": {strconv.Itoa(c.pageSize)},
			"apiKey":   {c.apiKey},
		},
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("newsapi everything: %w", err)
	}
	if out.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q: %s %s", out.Status, out.Code, out.Message)
	}

	articles := make([]models.RawArticle, 0, len(out.Articles))
	for _, a := range out.Articles {
		articles = append(articles, models.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
