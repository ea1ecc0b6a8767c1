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

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/quizgen"
	"github.com/ravitej/prepmate/internal/server"
	"github.com/ravitej/prepmate/internal/store"
	"github.com/ravitej/prepmate/internal/studyplan"
	"github.com/ravitej/prepmate/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PORT env var)")
}

func runServe(cmd *cobra.Command) error {
	// Missing .env is fine; config falls back to the process environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	srv := server.New(
		quizgen.New(provider, quizgen.DefaultConfig(), logger),
		studyplan.New(provider, studyplan.DefaultConfig(), logger),
		tutor.New(provider, logger),
		s.PlanRepo(),
		logger,
	)

	addr := listenAddr(cmd)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", addr),
			zap.String("db", dbPath),
			zap.String("provider", cfg.Provider))
		errCh <- httpSrv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func listenAddr(cmd *cobra.Command) string {
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		return a
	}
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":5000"
}
