package di

import (
	"fmt"

	"WhaleEye/internal/domain/repository"
	domsvc "WhaleEye/internal/domain/service"
	"WhaleEye/internal/handler/api"
	internalrepo "WhaleEye/internal/repository"
	"WhaleEye/internal/service/etherscan"
	"WhaleEye/internal/service/newsapi"
	"WhaleEye/internal/service/ratelimit"
	"WhaleEye/internal/services/news"
	"WhaleEye/internal/services/remote"
	"WhaleEye/internal/services/whale"
	"WhaleEye/internal/usecase"
	"WhaleEye/pkg/config"
	xhttp "WhaleEye/pkg/http"
	pkgkafka "WhaleEye/pkg/kafka"
	applogger "WhaleEye/pkg/logger"
	"WhaleEye/pkg/metrics"
	"WhaleEye/pkg/server"

	"github.com/redis/go-redis/v9"
)

const (
	providerEtherscan = "etherscan"
	providerNewsAPI   = "newsapi"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideQuotaGuard creates the provider quota guard. The redis backend shares
// counters across replicas; the cleanup closes its client.
func ProvideQuotaGuard(cfg *config.Config, l *applogger.Logger) (repository.QuotaGuard, func(), error) {
	rules := map[string]ratelimit.Rule{
		providerEtherscan: {Limit: cfg.Quota.EtherscanLimit, Window: cfg.Quota.EtherscanWindow},
		providerNewsAPI:   {Limit: cfg.Quota.NewsAPILimit, Window: cfg.Quota.NewsAPIWindow},
	}

	if cfg.Quota.Backend != config.QuotaRedis {
		return ratelimit.New(rules), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Quota.Redis.Addr,
		Password: cfg.Quota.Redis.Password,
		DB:       cfg.Quota.Redis.DB,
	})
	guard, err := ratelimit.NewRedisLimiter(client, cfg.Quota.Redis.Prefix, rules)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("quota guard: %w", err)
	}
	l.Info("quota guard: redis", applogger.String("addr", cfg.Quota.Redis.Addr))
	return guard, func() {
		if err := client.Close(); err != nil {
			l.Warn("redis close error", applogger.Error(err))
		}
	}, nil
}

// transactionSource returns nil without an API key so the analyzer goes straight to fixtures.
func transactionSource(cfg *config.Config) repository.TransactionSource {
	if cfg.Whale.EtherscanAPIKey == "" {
		return nil
	}
	return etherscan.New(cfg.Whale)
}

func articleSource(cfg *config.Config) repository.ArticleSource {
	if cfg.News.NewsAPIKey == "" {
		return nil
	}
	return newsapi.New(cfg.News)
}

// ProvideWhaleAnalyzer creates the in-process whale analyzer.
func ProvideWhaleAnalyzer(
	cfg *config.Config,
	quota repository.QuotaGuard,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.WhaleAnalyzer {
	return usecase.NewWhaleAnalyzer(transactionSource(cfg), whale.NewMockSource(), quota, m, l)
}

// ProvideNewsAnalyst creates the in-process news analyst.
func ProvideNewsAnalyst(
	cfg *config.Config,
	quota repository.QuotaGuard,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.NewsAnalyst {
	return usecase.NewNewsAnalyst(articleSource(cfg), news.NewMockSource(), cfg.News.ArticleLimit, quota, m, l)
}

// ProvideEventPublisher creates the query event publisher. When events are
// enabled the same producer also receives the aggregated error logs.
func ProvideEventPublisher(cfg *config.Config, l *applogger.Logger) (repository.EventPublisher, func(), error) {
	if !cfg.Events.Enabled {
		return internalrepo.NoopPublisher{}, func() {}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithTimeouts(cfg.Events.WriteTimeout, cfg.Events.WriteTimeout),
		pkgkafka.WithMaxAttempts(1),
		pkgkafka.WithBatchTimeout(cfg.Events.BatchTimeout),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	pub := internalrepo.NewKafkaPublisher(producer, cfg.Events.Topic)

	if cfg.Events.LogTopic != "" {
		l.AddCollector(&applogger.CollectionConfig{
			Topic:     cfg.Events.LogTopic,
			Publisher: pub,
		})
	}
	l.Info("event stream enabled",
		applogger.Strings("brokers", cfg.Events.Brokers),
		applogger.String("topic", cfg.Events.Topic),
	)

	return pub, func() {
		l.RemoveCollector()
		if err := pub.Close(); err != nil {
			l.Warn("kafka producer close error", applogger.Error(err))
		}
	}, nil
}

// ProvideOrchestrator creates the orchestrator. In remote mode it calls the
// analyzer endpoints of another deployment instead of the in-process analyzers.
func ProvideOrchestrator(
	cfg *config.Config,
	wa *usecase.WhaleAnalyzer,
	na *usecase.NewsAnalyst,
	events repository.EventPublisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Orchestrator {
	var (
		whaleSvc domsvc.WhaleAnalyzer = wa
		newsSvc  domsvc.NewsAnalyst   = na
	)
	if cfg.Orchestrator.Mode == config.ModeRemote {
		base := remote.NewHTTPServiceBase(cfg.Orchestrator)
		whaleSvc = remote.NewWhaleClient(base)
		newsSvc = remote.NewNewsClient(base)
		l.Info("orchestrator: remote analyzers", applogger.String("base_url", cfg.Orchestrator.BaseURL))
	}
	return usecase.NewOrchestrator(cfg.Orchestrator, whaleSvc, newsSvc, events, m, l)
}

// ProvideAnalysisHandler creates the HTTP handler for the analysis endpoints.
func ProvideAnalysisHandler(
	cfg *config.Config,
	wa *usecase.WhaleAnalyzer,
	na *usecase.NewsAnalyst,
	orch *usecase.Orchestrator,
	l *applogger.Logger,
) *api.AnalysisHandler {
	mode := func(live bool) string {
		if live {
			return "live"
		}
		return "mock"
	}
	ethLive, newsLive := cfg.Live()
	return api.NewAnalysisHandler(l, wa, na, orch, api.ProviderModes{
		providerEtherscan: mode(ethLive),
		providerNewsAPI:   mode(newsLive),
	})
}

// ProvideHTTPServer creates the Echo server with the analysis routes.
func ProvideHTTPServer(cfg *config.Config, h *api.AnalysisHandler, l *applogger.Logger) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, srv *xhttp.Server, l *applogger.Logger) *server.App {
	return server.New(cfg, srv, l)
}
