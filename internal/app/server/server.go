package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"labfixture/internal/domain/energylabel"
	"labfixture/internal/domain/staffing"
	"labfixture/internal/platform/config"
	"labfixture/internal/platform/idgen"
	"labfixture/internal/platform/metrics"
	"labfixture/internal/transport/http/api"
	energylabelhandler "labfixture/internal/transport/http/handlers/energylabel"
	greetinghandler "labfixture/internal/transport/http/handlers/greeting"
	staffinghandler "labfixture/internal/transport/http/handlers/staffing"
	"labfixture/internal/transport/http/middleware"
	"labfixture/internal/transport/http/openapi"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Store   *staffing.Store
	Metrics *metrics.Collector
	Router  http.Handler
}

// New builds a fully wired App with an empty store. Nothing is persisted;
// every App starts from a clean fixture state.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}
	docHandler, err := openapi.NewHandler(doc)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   staffing.NewStore(idgen.NewAllocator()),
		Metrics: metrics.New(),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(logger, app.Metrics))
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsEnabled {
		router.Method(http.MethodGet, "/metrics", app.Metrics.Handler())
	}
	docHandler.RegisterRoutes(router)

	greetinghandler.NewHandler(cfg.SecretCode, logger).RegisterRoutes(router)
	energylabelhandler.NewHandler(energylabel.Default()).RegisterRoutes(router)
	staffinghandler.NewHandler(app.Store, logger).RegisterRoutes(router)

	app.Router = router
	return app, nil
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for at most ShutdownTimeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("fixture server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down", "timeout", a.Config.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Run listens on Config.Addr and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.Config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.Config.Addr, err)
	}
	return a.Serve(ctx, ln)
}
