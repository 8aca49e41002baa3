package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/ucl-stats/internal/app"
	"github.com/riskibarqy/ucl-stats/internal/config"
	"github.com/riskibarqy/ucl-stats/internal/observability"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	pprofSrv := observability.NewPprofServer(cfg, logger)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A failed first load is surfaced through /v1/dataset; the API still starts.
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.DataFetchTimeout+5*time.Second)
	if snap, err := application.Dataset.Load(loadCtx); err != nil {
		logger.Error("initial dataset load failed", "source", cfg.DataSource, "error", err)
	} else {
		logger.Info("dataset loaded", "source", cfg.DataSource, "records", snap.TotalRecords)
	}
	cancelLoad()

	var wg conc.WaitGroup
	wg.Go(func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	})
	if pprofSrv != nil {
		wg.Go(func() {
			logger.Info("pprof server starting", "addr", pprofSrv.Addr)
			if err := pprofSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("pprof server failed", "error", err)
			}
		})
	}
	if application.Watcher != nil {
		wg.Go(func() {
			if err := application.Watcher.Run(ctx); err != nil {
				logger.Error("dataset watcher failed", "error", err)
			}
		})
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exitCode := 0
	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}
	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		logger.Error("stop pprof server", "error", err)
	}
	wg.Wait()

	if err := stopProfiling(); err != nil {
		logger.Error("stop pyroscope", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}

	logger.Info("http server stopped")
	if exitCode != 0 {
		_ = logger.Sync()
		os.Exit(exitCode)
	}
}
