package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoiceflow/internal/database"
	"invoiceflow/internal/logger"
	"invoiceflow/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the REST API, the websocket event stream and the /metrics
endpoint. Configuration comes from the environment (and configs/.env);
flags override it.`,
		Example: `  # Postgres from DB_* variables
  invoiceflow serve

  # Local embedded store with forward-only transitions
  invoiceflow serve --store badger --strict`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	cmd.Flags().String("store", "", "Store driver: postgres, sqlite or badger (overrides STORE_DRIVER)")
	cmd.Flags().Bool("strict", false, "Reject status changes that skip or reverse a step (overrides STRICT_TRANSITIONS)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.WithComponent("server")
	gin.SetMode(cfg.GinMode)

	store, err := database.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("store connection failed: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(0)
	go wsHub.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, store, wsHub),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("prefix", cfg.ServicePrefix).
			Str("store", cfg.StoreDriver).
			Bool("strict", cfg.StrictTransitions).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
