// Command filehub serves the multi-tenant file storage HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pushkind/filehub/internal/auth"
	"github.com/pushkind/filehub/internal/config"
	"github.com/pushkind/filehub/internal/handlers"
	"github.com/pushkind/filehub/internal/middleware"
	"github.com/pushkind/filehub/pkg/health"
	"github.com/pushkind/filehub/pkg/logger"
	"github.com/pushkind/filehub/pkg/storage"
)

// configDir holds default.yaml plus optional per-environment overlays.
const configDir = "config"

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		SentryDSN:   cfg.SentryDSN,
	}, middleware.RequestIDExtractor(), auth.HubExtractor())

	root, err := storage.NewUploadRoot(cfg.UploadPath)
	if err != nil {
		log.Error("invalid upload root", slog.Any("error", err))
		os.Exit(1)
	}

	svc, err := storage.NewFileService(storage.Config{UploadRoot: root})
	if err != nil {
		log.Error("failed to create file service", slog.Any("error", err))
		os.Exit(1)
	}

	router := handlers.NewRouter(log, handlers.Config{
		Secret:         []byte(cfg.Secret),
		AuthServiceURL: cfg.AuthServiceURL,
		CookieDomain:   cfg.Domain,
		MaxUploadBytes: cfg.MaxUploadBytes,
		ReadyChecks: health.Checks{
			"upload_root": func(context.Context) error {
				_, err := os.Stat(root.Path())
				return err
			},
		},
	}, svc)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// No ReadTimeout or WriteTimeout: slow multipart uploads are capped
		// by MaxBytesReader, not a wall clock.
		IdleTimeout: 120 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		log.Info("server starting",
			slog.String("address", srv.Addr),
			slog.String("environment", cfg.Environment),
			slog.String("upload_root", root.Path()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped")
}
