package httpx

import (
	"net/http"

	"log/slog"

	"github.com/ValerySM/realtime-chat/internal/app"
	"github.com/ValerySM/realtime-chat/internal/chat"
	"github.com/ValerySM/realtime-chat/internal/store"
	"github.com/ValerySM/realtime-chat/internal/ws"
	"github.com/ValerySM/realtime-chat/pkg/auth"
	"github.com/ValerySM/realtime-chat/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and handlers
func NewRouter(cfg app.Config, logger *slog.Logger, hub *ws.Hub, engine *chat.Engine, db *store.Postgres) http.Handler {
	mw := NewMiddleware(cfg)
	roomsAPI := &RoomsAPI{Engine: engine}

	// Auth API
	j := auth.New(cfg.JWTSecret)
	authAPI := &AuthAPI{DB: db, JWT: j}

	mux := http.NewServeMux()

	// Health / readiness / metrics
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/readyz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/metrics", metrics.Handler())

	// WebSocket endpoint
	mux.Handle("/ws", http.HandlerFunc(hub.ServeWS))

	// Room listing (same data as the rooms_update event)
	mux.Handle("GET /rooms", http.HandlerFunc(roomsAPI.List))

	// Auth endpoints
	mux.Handle("POST /auth/register", http.HandlerFunc(authAPI.Register))
	mux.Handle("POST /auth/login", http.HandlerFunc(authAPI.Login))
	mux.Handle("GET /auth/me", mw.Auth(http.HandlerFunc(authAPI.Me)))

	// CORS applied globally
	return mw.Wrap(mux)
}
