package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ValerySM/realtime-chat/internal/app"
	"github.com/ValerySM/realtime-chat/internal/chat"
	httpx "github.com/ValerySM/realtime-chat/internal/http"
	"github.com/ValerySM/realtime-chat/internal/store"
	"github.com/ValerySM/realtime-chat/internal/ws"
	"github.com/ValerySM/realtime-chat/pkg/auth"
)

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg.Env)

	// Cancel on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Postgres connection + migrations (user accounts only; chat state is in-memory)
	pg, err := store.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("postgres connect", "err", err)
		log.Fatal(err)
	}
	defer pg.Close()
	if err := store.RunMigrations(ctx, pg, logger); err != nil {
		logger.Error("migrations", "err", err)
		log.Fatal(err)
	}

	// Chat engine: rooms, presence, history, fan-out
	engine := chat.NewEngine(logger, auth.New(cfg.JWTSecret), chat.Options{
		HistoryLimit: cfg.HistoryLimit,
	})

	// WebSocket hub
	hub := ws.NewHub(logger, engine)

	// HTTP + WS router
	router := httpx.NewRouter(cfg, logger, hub, engine, pg)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("server.listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server.crash", "err", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("server.shutdown.start")

	// shutdown
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)

	logger.Info("server.shutdown.complete")
	_ = os.Stdout.Sync()
}
