package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jgrayburn/nc-news-api/internal/config"
	"github.com/jgrayburn/nc-news-api/internal/logger"
	"github.com/jgrayburn/nc-news-api/internal/server"
)

func main() {
	cfg := config.Load()

	srv, db, err := server.New(cfg)
	if err != nil {
		logger.L.Fatal("failed to initialize server", zap.Error(err))
	}
	defer db.Close()

	logger.L.Info("database health", zap.Any("stats", db.Health()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("forced shutdown", zap.Error(err))
	}
}
