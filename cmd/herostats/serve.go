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

	"github.com/spf13/cobra"

	"github.com/1is1/dota-stat-calculator/internal/chart"
	"github.com/1is1/dota-stat-calculator/internal/config"
	"github.com/1is1/dota-stat-calculator/internal/dataset"
	"github.com/1is1/dota-stat-calculator/internal/handlers/web"
	"github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison"
	"github.com/1is1/dota-stat-calculator/internal/repositories/hero"
	redisclient "github.com/1is1/dota-stat-calculator/internal/redis"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the comparison page, JSON API, and chart endpoint.

Configuration comes from HEROSTATS_* environment variables; --addr overrides
the listen address. With HEROSTATS_REDIS_ADDR set, heroes are read from Redis
(seeded from HEROSTATS_DATASET_PATH when given); otherwise the dataset file or
the embedded sample backs an in-memory repository.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HEROSTATS_ADDR)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.LoadFromEnv()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	setupLogging(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	handler, err := buildHandler(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	}
}

// buildHandler wires the repository, calculator, orchestrator, and web
// handler from the process configuration.
func buildHandler(ctx context.Context, cfg config.Config) (http.Handler, error) {
	calc, err := newCalculator(cfg.ConstantsPath)
	if err != nil {
		return nil, err
	}

	repo, err := buildRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := comparison.NewOrchestrator(&comparison.Config{
		HeroRepo:   repo,
		Calculator: calc,
	})
	if err != nil {
		return nil, err
	}

	return web.NewHandler(&web.Config{
		Service:  svc,
		Renderer: chart.NewRenderer(nil),
	})
}

// buildRepository picks the hero store. Redis wins when configured and is
// seeded from the dataset file when one is named; otherwise the dataset file
// or the embedded sample backs an in-memory repository.
func buildRepository(ctx context.Context, cfg config.Config) (hero.Repository, error) {
	snap, err := loadConfiguredSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		repo, err := hero.NewRedisRepository(&hero.Config{Client: client})
		if err != nil {
			return nil, err
		}
		if snap != nil {
			if err := repo.PutAll(ctx, snap.HeroList()); err != nil {
				return nil, err
			}
			slog.Info("dataset stored in redis", "heroes", len(snap.Heroes))
		}
		return repo, nil
	}

	if snap == nil {
		snap = dataset.Sample()
		slog.Info("using embedded sample dataset", "heroes", len(snap.Heroes))
	}
	return hero.NewInMemoryFromSnapshot(snap)
}

// loadConfiguredSnapshot loads the dataset file when one is configured. A nil
// snapshot with nil error means none was named.
func loadConfiguredSnapshot(cfg config.Config) (*dataset.Snapshot, error) {
	if cfg.DatasetPath == "" {
		return nil, nil
	}
	snap, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	slog.Info("dataset loaded", "path", cfg.DatasetPath, "heroes", len(snap.Heroes))
	return snap, nil
}
