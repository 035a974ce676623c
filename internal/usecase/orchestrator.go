package usecase

import (
	"context"
	"sync"
	"time"

	"WhaleEye/internal/domain/models"
	domrepo "WhaleEye/internal/domain/repository"
	domsvc "WhaleEye/internal/domain/service"
	"WhaleEye/internal/services/intent"
	"WhaleEye/pkg/config"
	applogger "WhaleEye/pkg/logger"
)

// Orchestrator routes a chat message to the analyzers and renders one reply.
type Orchestrator struct {
	whale         domsvc.WhaleAnalyzer
	news          domsvc.NewsAnalyst
	events        domrepo.EventPublisher
	metrics       domrepo.Metrics
	logger        *applogger.Logger
	defaultWallet string
	timeout       time.Duration
	publishWait   time.Duration
	now           func() time.Time
}

func NewOrchestrator(
	cfg config.OrchestratorConfig,
	whale domsvc.WhaleAnalyzer,
	news domsvc.NewsAnalyst,
	events domrepo.EventPublisher,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *Orchestrator {
	return &Orchestrator{
		whale:         whale,
		news:          news,
		events:        events,
		metrics:       metrics,
		logger:        logger,
		defaultWallet: cfg.DefaultWallet,
		timeout:       cfg.Timeout,
		publishWait:   5 * time.Second,
		now:           time.Now,
	}
}

// Handle classifies req.Message and answers it. Analyzer failures are rendered
// into the reply rather than returned.
func (o *Orchestrator) Handle(ctx context.Context, req *models.OrchestratorRequest) (*models.OrchestratorResponse, error) {
	start := time.Now()
	defer func() { o.metrics.RecordLatency("orchestrate", time.Since(start).Seconds()) }()

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	qt := intent.Classify(req.Message)
	o.logger.Debug("query classified",
		applogger.String("request_id", req.RequestID),
		applogger.String("query_type", string(qt)),
		applogger.String("role", string(req.UserRole)),
	)

	ev := &models.QueryEvent{
		RequestID: req.RequestID,
		Role:      string(req.UserRole),
		QueryType: qt,
	}

	var resp *models.OrchestratorResponse
	switch qt {
	case models.QueryWhale:
		resp = o.handleWhale(ctx, req, ev)
	case models.QueryNews:
		resp = o.handleNews(ctx, req, ev)
	case models.QueryCombined:
		resp = o.handleCombined(ctx, req, ev)
	default:
		resp = &models.OrchestratorResponse{
			Role:      string(req.UserRole),
			QueryType: models.QueryGeneral,
			Response:  generalReply,
		}
	}

	if req.Format == models.FormatHTML {
		resp.Response = ToHTML(resp.Response)
	}

	o.metrics.RecordQuery("orchestrator", string(qt))
	o.publish(ctx, ev)
	return resp, nil
}

func (o *Orchestrator) handleWhale(ctx context.Context, req *models.OrchestratorRequest, ev *models.QueryEvent) *models.OrchestratorResponse {
	wallet := intent.ExtractWallet(req.Message, o.defaultWallet)
	ev.Wallet = wallet
	resp := &models.OrchestratorResponse{
		Role:      string(req.UserRole),
		QueryType: models.QueryWhale,
		Data:      &models.ResponseData{},
	}

	data, err := o.whale.Analyze(ctx, wallet, req.UserRole)
	if err != nil {
		o.logger.Warn("whale analyzer failed", applogger.String("request_id", req.RequestID), applogger.Error(err))
		o.metrics.RecordFallback("whale-analyzer", reasonProviderError)
		ev.WhaleFallback = true
		resp.Response = renderMockWhale(wallet, req.UserRole)
		return resp
	}

	ev.WhaleFallback = data.Mock
	resp.Response = renderWhale(data, req.UserRole, wallet)
	resp.Data.WhaleData = data
	return resp
}

func (o *Orchestrator) handleNews(ctx context.Context, req *models.OrchestratorRequest, ev *models.QueryEvent) *models.OrchestratorResponse {
	resp := &models.OrchestratorResponse{
		Role:      string(req.UserRole),
		QueryType: models.QueryNews,
		Data:      &models.ResponseData{},
	}

	data, err := o.news.Analyze(ctx, req.UserRole, req.Message)
	if err != nil {
		o.logger.Warn("news analyst failed", applogger.String("request_id", req.RequestID), applogger.Error(err))
		o.metrics.RecordFallback("news-analyst", reasonProviderError)
		ev.NewsFallback = true
		resp.Response = renderMockNews(req.UserRole)
		return resp
	}

	ev.NewsFallback = data.Mock
	resp.Response = renderNews(data, req.UserRole)
	resp.Data.NewsData = data
	return resp
}

// handleCombined runs both analyzers concurrently and waits for both outcomes.
func (o *Orchestrator) handleCombined(ctx context.Context, req *models.OrchestratorRequest, ev *models.QueryEvent) *models.OrchestratorResponse {
	wallet := intent.ExtractWallet(req.Message, o.defaultWallet)
	ev.Wallet = wallet

	type item struct {
		name  string
		whale *models.AnalysisResponse
		news  *models.NewsResponse
		err   error
	}
	ch := make(chan item, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := o.whale.Analyze(ctx, wallet, req.UserRole)
		ch <- item{name: "whale", whale: v, err: err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		// the combined path asks for general news, not the user's wording
		v, err := o.news.Analyze(ctx, req.UserRole, "")
		ch <- item{name: "news", news: v, err: err}
	}()

	go func() { wg.Wait(); close(ch) }()

	data := &models.ResponseData{}
	for it := range ch {
		if it.err != nil {
			o.logger.Warn("combined sub-analysis failed",
				applogger.String("request_id", req.RequestID),
				applogger.String("analysis", it.name),
				applogger.Error(it.err),
			)
			o.metrics.RecordFallback(it.name+"-combined", reasonProviderError)
		}
		switch it.name {
		case "whale":
			if it.err != nil {
				ev.WhaleFallback = true
				continue
			}
			ev.WhaleFallback = it.whale.Mock
			data.WhaleData = it.whale
		case "news":
			if it.err != nil {
				ev.NewsFallback = true
				continue
			}
			ev.NewsFallback = it.news.Mock
			data.NewsData = it.news
		}
	}

	return &models.OrchestratorResponse{
		Role:      string(req.UserRole),
		QueryType: models.QueryCombined,
		Response:  renderCombined(data.WhaleData, data.NewsData, req.UserRole),
		Data:      data,
	}
}

// publish emits the query event. Failures are logged only.
func (o *Orchestrator) publish(ctx context.Context, ev *models.QueryEvent) {
	if o.events == nil {
		return
	}
	ev.Timestamp = o.now().UTC()

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.publishWait)
	defer cancel()
	if err := o.events.PublishQuery(pctx, ev); err != nil {
		o.metrics.RecordError("event_publish")
		o.logger.Warn("query event publish failed",
			applogger.String("request_id", ev.RequestID),
			applogger.Error(err),
		)
	}
}
