// @title Pet Care Companion API
// @version 1.0
// @description Tareas, calendario, historial, alertas de mascotas perdidas y perfil.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-companion/internal/config"
	"pet-care-companion/internal/platform/factory"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/router"
	"pet-care-companion/internal/seed"
)

func main() {
	if err := run(); err != nil {
		logger.NewFromEnv().Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logOpts := cfg.LoggerOptions()
	log := logger.New(logOpts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := factory.OpenStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Warn("close storage", map[string]any{"error": err.Error()})
		}
	}()

	if cfg.SeedSampleData {
		if err := seed.Load(ctx, repos, time.Now(), cfg.Location(), log); err != nil {
			return err
		}
	}

	r := router.NewRouter(router.Options{
		Config: cfg,
		Logger: log,
		Repos:  repos,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": cfg.DBDriver, "log_level": logOpts.Level.String()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
