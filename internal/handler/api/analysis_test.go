package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	models "WhaleEye/internal/domain/models"
	"WhaleEye/internal/services/news"
	"WhaleEye/internal/services/whale"
	"WhaleEye/internal/usecase"
	"WhaleEye/pkg/config"
	xhttp "WhaleEye/pkg/http"
	xlogger "WhaleEye/pkg/logger"
	"WhaleEye/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

const testWallet = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"

type failingWhale struct{}

func (failingWhale) Analyze(context.Context, string, models.Role) (*models.AnalysisResponse, error) {
	return nil, errors.New("fixture store corrupted")
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	l := xlogger.Nop()

	wa := usecase.NewWhaleAnalyzer(nil, whale.NewMockSource(), nil, m, l)
	na := usecase.NewNewsAnalyst(nil, news.NewMockSource(), 6, nil, m, l)
	orch := usecase.NewOrchestrator(config.OrchestratorConfig{
		DefaultWallet: testWallet,
		Timeout:       time.Second,
	}, wa, na, nil, m, l)

	h := NewAnalysisHandler(l, wa, na, orch, ProviderModes{"etherscan": "mock", "newsapi": "mock"})
	return xhttp.NewServer(h, xhttp.WithLogger(l)).Echo()
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestWhaleAnalyzerEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/whale-analyzer", `{"walletAddress":"`+testWallet+`","role":"investor"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var got models.AnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Wallet != testWallet || len(got.Transactions) != 3 || got.AvgGasFee != whale.MockAvgGasFee {
		t.Fatalf("unexpected body %+v", got)
	}
	if got.Insights.Investor == "" {
		t.Fatalf("missing investor insight")
	}
	if strings.Contains(rec.Body.String(), `"Mock"`) {
		t.Fatalf("internal mock flag leaked: %s", rec.Body.String())
	}
}

func TestMissingFieldsAreRejected(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		path, body, field string
	}{
		{"/whale-analyzer", `{"role":"trader"}`, "walletAddress"},
		{"/whale-analyzer", `{"walletAddress":"` + testWallet + `"}`, "role"},
		{"/news-analyst", `{"query":"bitcoin"}`, "role"},
		{"/orchestrator", `{"userRole":"trader"}`, "message"},
		{"/orchestrator", `{"message":"hi"}`, "userRole"},
	}
	for _, tc := range cases {
		rec := do(t, srv, http.MethodPost, tc.path, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: status %d", tc.path, tc.body, rec.Code)
		}
		var body xhttp.ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.Contains(body.Error, tc.field) {
			t.Fatalf("%s: error %q does not name %s", tc.path, body.Error, tc.field)
		}
	}
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/news-analyst", `{"role":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestNonPostIsMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/whale-analyzer", "/news-analyst", "/orchestrator"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			rec := do(t, srv, method, path, "")
			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("%s %s: status %d", method, path, rec.Code)
			}
		}
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/orchestrator", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("preflight body must be empty, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "x-client-info") {
		t.Fatalf("allow-headers %q", got)
	}
}

func TestNewsAnalystUnknownRole(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/news-analyst", `{"role":"whale-watcher"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var got models.NewsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Articles) != 4 || len(got.Themes) == 0 || got.Insights.Trader == "" {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestOrchestratorEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/orchestrator", `{"message":"whale news for `+testWallet+`","userRole":"analyst"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var got models.OrchestratorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.QueryType != models.QueryCombined || got.Role != "analyst" {
		t.Fatalf("unexpected header %+v", got)
	}
	if !strings.Contains(got.Response, "🔍 **Combined Analysis for Analyst**") {
		t.Fatalf("unexpected response:\n%s", got.Response)
	}
	if got.Data == nil || got.Data.WhaleData == nil || got.Data.NewsData == nil {
		t.Fatalf("combined data missing: %+v", got.Data)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
}

func TestOrchestratorRejectsUnknownFormat(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/orchestrator", `{"message":"hi","userRole":"trader","format":"pdf"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestInternalErrorIs500(t *testing.T) {
	l := xlogger.Nop()
	h := NewAnalysisHandler(l, failingWhale{}, nil, nil, nil)
	srv := xhttp.NewServer(h, xhttp.WithLogger(l)).Echo()

	rec := do(t, srv, http.MethodPost, "/whale-analyzer", `{"walletAddress":"`+testWallet+`","role":"trader"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	var body xhttp.ErrorBody
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "fixture store corrupted" {
		t.Fatalf("error %q", body.Error)
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var got xhttp.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "ok" || got.Providers["etherscan"] != "mock" {
		t.Fatalf("unexpected health %+v", got)
	}
}
