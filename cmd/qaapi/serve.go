package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/qa_api/internal/config"
	"github.com/Skotchmaster/qa_api/internal/db"
	"github.com/Skotchmaster/qa_api/internal/events"
	"github.com/Skotchmaster/qa_api/internal/httpserver"
	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/middleware"
	"github.com/Skotchmaster/qa_api/internal/repo"
	"github.com/Skotchmaster/qa_api/internal/search"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed statuses and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, addr := loadConfig(cmd)
			return serve(cmd.Context(), cfg, addr)
		},
	}
	cobraflags.RegisterMap(cmd, newFlags())
	return cmd
}

func serve(ctx context.Context, cfg config.Config, addr string) error {
	logger := logging.New(cfg.EffectiveLogLevel()).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	if err == nil {
		err = db.Migrate(initCtx, gdb)
	}
	if err == nil {
		err = (&repo.GormRepo{DB: gdb}).SeedStatuses(initCtx, logger)
	}
	cancel()
	if err != nil {
		logger.Error("db_init_failed", "error", err)
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() { _ = publisher.Close() }()
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS is empty, domain events are disabled")
	}

	opts := httpserver.Options{
		Events:       publisher,
		Index:        newSearchIndex(cfg, logger),
		EnforceStock: cfg.EnforceStock,
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Use(middleware.Common(logger)...)

	httpserver.Register(e, httpserver.NewDeps(gdb, opts))

	srv := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("qaapi listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := awaitStop(sigCtx, errCh); err != nil {
		logger.Error("listen_failed", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}

	logger.Info("qaapi stopped")
	return nil
}

// awaitStop blocks until ctx is done (a shutdown signal) or the listener fails.
func awaitStop(ctx context.Context, errCh <-chan error) error {
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// newSearchIndex returns nil when ES_URL is unset or the cluster cannot be
// reached; searches then go to the database.
func newSearchIndex(cfg config.Config, logger *slog.Logger) search.Index {
	if cfg.ESURL == "" {
		return nil
	}
	client, err := search.NewClient(search.ClientConfig{
		URL:      cfg.ESURL,
		User:     cfg.ESUser,
		Password: cfg.ESPassword,
	})
	if err != nil {
		logger.Warn("elasticsearch_unavailable", "reason", "product search falls back to the database", "error", err)
		return nil
	}
	logger.Info("elasticsearch connected", "url", cfg.ESURL, "index", cfg.ESIndex)
	return search.NewESIndex(client, cfg.ESIndex)
}
