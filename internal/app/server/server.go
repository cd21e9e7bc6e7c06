package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/db"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/goals"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/domain/tasks"
	"hrdesk/internal/domain/timesheet"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/jobs"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/transport/http/handlers"
	"hrdesk/internal/transport/http/middleware"
)

const migrationsDir = "migrations"

type App struct {
	cfg  config.Config
	pool *pgxpool.Pool
	srv  *http.Server
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg.SeedCompanyName); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	collector := metrics.New()
	jobRunner := jobs.New(pool)
	fonts := reports.NewFontResolver(cfg.FontDir, cfg.FontCDNBase, cfg.FontFetchTimeout)
	reportService := reports.NewService(
		reports.NewStoreSources(pool),
		fonts,
		reports.RowLimits{Combined: cfg.ExportRowsCombined, Single: cfg.ExportRowsSingle},
		jobRunner,
		collector,
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	systemHandler := handlers.NewSystemHandler(pool, collector, cfg.MetricsEnabled)
	systemHandler.Register(router)

	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
			handlers.NewCoreHandler(core.NewStore(pool)).Register(r)
			handlers.NewTimesheetHandler(timesheet.NewStore(pool)).Register(r)
			handlers.NewTasksHandler(tasks.NewStore(pool)).Register(r)
			handlers.NewGoalsHandler(goals.NewStore(pool)).Register(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.ExportRateLimit(cfg.RateLimitPerMinute, time.Minute))
			handlers.NewReportsHandler(reportService, jobRunner).Register(r)
		})
	})

	return &App{
		cfg:  cfg,
		pool: pool,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      2 * time.Minute,
			IdleTimeout:       time.Minute,
		},
	}, nil
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Run() error {
	defer a.pool.Close()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", a.cfg.Addr, "env", a.cfg.Environment)
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.srv.Shutdown(ctx)
}
