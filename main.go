package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/config"
	"github.com/ideamk/leadmail/handlers"
	"github.com/ideamk/leadmail/internal/leadfmt"
	"github.com/ideamk/leadmail/logger"
	"github.com/ideamk/leadmail/router"
	"github.com/ideamk/leadmail/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	labels, err := leadfmt.LoadLabels(cfg.Lead.Language, cfg.Lead.LabelsFile)
	if err != nil {
		log.Fatalf("Failed to load lead labels: %v", err)
	}
	renderer := leadfmt.NewRenderer(labels, cfg.Lead.DefaultSource)

	mailer, err := services.NewMailer(&cfg.Mail)
	if err != nil {
		log.Fatalf("Failed to create mailer: %v", err)
	}
	if err := mailer.Ready(); err != nil {
		// Not fatal: every lead is answered with this error until it is fixed.
		log.Warnw("Mailer is not ready", "provider", mailer.Name(), "error", err)
	}

	leadService := services.NewLeadService(&cfg.Mail, mailer, renderer)
	healthService := services.NewHealthService(mailer, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		LeadHandler:   handlers.NewLeadHandler(leadService),
		HealthHandler: handlers.NewHealthHandler(healthService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "provider", mailer.Name())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		log.Infow("Shutting down server", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorw("Graceful shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}
}
