package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/ucl-stats/internal/config"
	"github.com/riskibarqy/ucl-stats/internal/infrastructure/csvsource"
	"github.com/riskibarqy/ucl-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/ucl-stats/internal/platform/cache"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
	"github.com/riskibarqy/ucl-stats/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// App holds the wired service. Watcher is nil unless DATA_WATCH is on.
type App struct {
	Server  *http.Server
	Dataset *usecase.DatasetService
	Engine  *usecase.QueryEngine
	Watcher *csvsource.Watcher
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	fetchClient := &http.Client{
		Timeout:   cfg.DataFetchTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	fetcher := csvsource.NewFetcher(cfg.DataSource, fetchClient)
	loader := csvsource.NewAdapter(fetcher, logger.Named("csvsource"))

	engine := usecase.NewQueryEngine(cfg.StatsReferenceYear, logger.Named("engine"))
	datasetSvc := usecase.NewDatasetService(loader, engine, logger.Named("dataset"))
	charts := cache.NewStore[[]byte](cfg.ChartsCacheTTL)

	handler := httpapi.NewHandler(engine, datasetSvc, charts, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	out := &App{
		Server:  server,
		Dataset: datasetSvc,
		Engine:  engine,
	}
	if cfg.DataWatch {
		out.Watcher = csvsource.NewWatcher(cfg.DataSource, func(ctx context.Context) error {
			_, err := datasetSvc.Load(ctx)
			return err
		}, logger.Named("watcher"))
	}

	return out, nil
}
