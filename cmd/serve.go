package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Sugamrai0/AIML/internal/apihandlers"
	"github.com/Sugamrai0/AIML/internal/clix"
)

const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Starts an HTTP server exposing learning path generation, templates,
document Q&A and summarization as a JSON API.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		cfg := appInstance.Config

		// Flags override config only when set explicitly.
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetString("port")
		}
		if origins := clix.ParseList(cmd.Flags(), "cors-origins"); len(origins) > 0 {
			cfg.CORS.AllowOrigins = origins
		}

		gin.SetMode(cfg.Server.Mode)
		router := apihandlers.NewRouter(apihandlers.NewAPIHandler(appInstance))

		srv := &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Addr, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		appInstance.Logger.WithField("addr", srv.Addr).Info("Starting API server")

		select {
		case <-ctx.Done():
			appInstance.Logger.Info("Shutting down API server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown API server: %w", err)
			}
			return nil
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("failed to run API server: %w", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().String("port", "8000", "Port to listen on")
	serveCmd.Flags().String("cors-origins", "", "Comma-separated list of allowed CORS origins (overrides config)")
}
