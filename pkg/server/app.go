package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"WhaleEye/pkg/config"
	xhttp "WhaleEye/pkg/http"
	applogger "WhaleEye/pkg/logger"
)

// App encapsulates the HTTP service lifecycle.
type App struct {
	cfg        *config.Config
	httpServer *xhttp.Server
	log        *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, srv *xhttp.Server, l *applogger.Logger) *App {
	return &App{cfg: cfg, httpServer: srv, log: l}
}

// Run starts the HTTP server and blocks until ctx is cancelled or an
// interrupt arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ethLive, newsLive := a.cfg.Live()
	a.log.Info("starting whaleeye",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("orchestrator_mode", a.cfg.Orchestrator.Mode),
		applogger.Bool("etherscan_live", ethLive),
		applogger.Bool("newsapi_live", newsLive),
		applogger.Bool("events", a.cfg.Events.Enabled),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}

	<-ctx.Done()
	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.log.Info("shutdown complete")
	return nil
}
