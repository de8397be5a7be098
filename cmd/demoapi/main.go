package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/demoapi/internal/config"
	"github.com/alfagnish/demoapi/internal/logging"
	"github.com/alfagnish/demoapi/internal/server"
)

func main() {
	// 1. Load configuration from environment variables.
	cfg := config.Load()

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"title", cfg.AppTitle,
		"version", cfg.AppVersion,
		"listen", cfg.ListenAddr,
		"processor_delay", cfg.Payments.ProcessorDelay,
		"fetch_count", cfg.Payments.FetchCount,
		"fetch_delay", cfg.Payments.FetchDelay,
		"history_size", cfg.Payments.HistorySize,
	)

	// 2. Set up the chi router with all handlers.
	handler := server.New(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Start the HTTP server.
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.ListenAddr, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // payments are slow and history is streamed
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("server listening", "addr", ln.Addr().String())
	if err := server.Serve(ctx, srv, ln, cfg.ShutdownTimeout); err != nil {
		logger.Error("server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("server stopped")
}
