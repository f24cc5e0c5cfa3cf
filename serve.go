package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"coastfire/internal/config"
	"coastfire/internal/handler"
	"coastfire/internal/leads"
	"coastfire/internal/logger"
	"coastfire/internal/mailer"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create the email_leads table on startup")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return err
	}
	defer log.Sync()

	gateway, err := openGateway(cfg.Database, log, migrate)
	if err != nil {
		return err
	}
	dispatcher := mailer.FromConfig(cfg.Email, log)
	if dispatcher.Simulated() {
		log.Warn("RESEND_API_KEY not set, emails will be simulated")
	}

	h := handler.New(gateway, dispatcher, log, cfg.RequestTimeout)
	srv := &fasthttp.Server{
		Handler:            h.Handle,
		Name:               "coastfire",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       cfg.RequestTimeout + 5*time.Second,
		MaxRequestBodySize: 1 << 20,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Coast FIRE service starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	return srv.ShutdownWithContext(shutdownCtx)
}

func openGateway(cfg config.DatabaseConfig, log *logger.Logger, migrate bool) (leads.Gateway, error) {
	if !cfg.Configured() {
		log.Warn("DATABASE_URL not set, lead persistence is unavailable")
		return leads.Unconfigured{}, nil
	}
	db, err := leads.Open(cfg)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := leads.Migrate(db); err != nil {
			return nil, err
		}
	}
	return leads.NewStore(db, log), nil
}
