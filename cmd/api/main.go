package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"pagewatch/internal/config"
	handler "pagewatch/internal/handler/http"
	pgRepo "pagewatch/internal/infra/adapter/persistence/postgres"
	"pagewatch/internal/infra/assets"
	"pagewatch/internal/infra/db"
	"pagewatch/internal/infra/fetcher"
	"pagewatch/internal/infra/imaging"
	"pagewatch/internal/infra/scraper"
	"pagewatch/internal/infra/worker"
	"pagewatch/internal/observability/logging"
	catUC "pagewatch/internal/usecase/category"
	pageUC "pagewatch/internal/usecase/page"
	srcUC "pagewatch/internal/usecase/source"
	"pagewatch/internal/usecase/watch"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logging.NewLogger()

	appCfg, err := config.LoadApp()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := watch.NewRegistry()
	sources, pages, categories := setupServices(ctx, logger, database, appCfg, registry)

	if err := sources.StartAll(ctx); err != nil {
		logger.Error("failed to start watchers", slog.Any("error", err))
		os.Exit(1)
	}

	gauges := &worker.GaugeRefresher{Stats: pgRepo.NewStatsRepo(database), Logger: logger}
	cronJob, err := gauges.Schedule(appCfg.GaugeRefreshSpec)
	if err != nil {
		logger.Error("failed to schedule gauge refresh", slog.Any("error", err))
		os.Exit(1)
	}

	apiServer := &http.Server{
		Addr: appCfg.HTTPAddr,
		Handler: handler.NewRouter(handler.RouterConfig{
			DB:         database,
			Sources:    sources,
			Pages:      pages,
			Categories: categories,
			Registry:   registry,
			Version:    version(),
			Logger:     logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              appCfg.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api server listening", slog.String("addr", appCfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("metrics server listening", slog.String("addr", appCfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		registry.StopAll()
		<-cronJob.Stop().Done()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("api server shutdown failed", slog.Any("error", err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("stopped")
}

// initDatabase opens the database connection and runs pending migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("migrations failed", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServices wires the repositories, the outbound fetch/scrape stack, and
// the three use case services.
func setupServices(
	runCtx context.Context,
	logger *slog.Logger,
	database *sql.DB,
	appCfg config.App,
	registry *watch.Registry,
) (*srcUC.Service, *pageUC.Service, *catUC.Service) {
	sourceRepo := pgRepo.NewSourceRepo(database)
	pageRepo := pgRepo.NewPageRepo(database)
	categoryRepo := pgRepo.NewCategoryRepo(database)

	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("invalid fetch configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if appCfg.CrawlPolicyFile != "" {
		policy, err := config.LoadCrawlPolicy(appCfg.CrawlPolicyFile)
		if err != nil {
			logger.Error("invalid crawl policy", slog.Any("error", err))
			os.Exit(1)
		}
		policy.ApplyTo(&fetchCfg)
		logger.Info("crawl policy applied", slog.String("file", appCfg.CrawlPolicyFile))
	}
	client := fetcher.New(fetchCfg)
	scr := scraper.New(client)

	pages := &pageUC.Service{
		Pages:         pageRepo,
		Sources:       sourceRepo,
		Categories:    categoryRepo,
		Fetcher:       client,
		Meta:          scr,
		Assets:        assets.NewStore(appCfg.DataDir),
		Resize:        imaging.ResizeJPEG,
		ImageMaxWidth: appCfg.ImageMaxWidth,
		Logger:        logger,
	}

	sources := &srcUC.Service{
		Sources:    sourceRepo,
		Categories: categoryRepo,
		Scraper:    scr,
		Registry:   registry,
		Pages:      pages,
		WatcherConfig: watch.Config{
			Scraper:      scr,
			Pages:        pages,
			Sources:      sourceRepo,
			DefaultCycle: appCfg.DefaultCycle,
			Logger:       logger,
		},
		RunCtx: runCtx,
		Logger: logger,
	}

	categories := &catUC.Service{Categories: categoryRepo}

	return sources, pages, categories
}

func version() string {
	if v := os.Getenv("APP_VERSION"); v != "" {
		return v
	}
	return "dev"
}
