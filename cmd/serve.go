package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/LofiStudio/internal/config"
	"github.com/Rorical/LofiStudio/internal/core"
	"github.com/Rorical/LofiStudio/internal/logger"
	"github.com/Rorical/LofiStudio/internal/metrics"
	"github.com/Rorical/LofiStudio/internal/server"
)

const shutdownTimeout = 10 * time.Second

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prompt generator over HTTP",
	Long: `Start an HTTP API exposing the prompt generator:

  GET  /healthz       liveness and credential status
  GET  /v1/options    weather and mood catalog
  POST /v1/prompts    {"weather","mood","model"} -> {"prompt",...}
  GET  /metrics       Prometheus metrics`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err := logger.New(cfg.LogLevel, logger.Stderr)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		if !cfg.IsValid() {
			log.Warn("no API key configured, prompt requests will fail until one is set",
				zap.String("env", config.APIKeyEnv))
		}

		rec := metrics.New()
		client := core.NewPromptClient(cfg,
			core.WithLogger(log),
			core.WithMetrics(rec),
		)
		srv := server.New(client, rec, log, cfg.GetModel()).HTTPServer(addrFlag)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return listenAndServe(ctx, srv, log)
	},
}

// listenAndServe blocks until ctx is done or the server fails.
func listenAndServe(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	errCh := make(chan error, 1)

	go func() {
		log.Info("http server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutdown signal received")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":8080", "address to listen on")

	rootCmd.AddCommand(serveCmd)
}
