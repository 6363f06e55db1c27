package httpx

import (
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/ValerySM/realtime-chat/internal/app"
	"github.com/ValerySM/realtime-chat/pkg/auth"
)

type Middleware struct {
	cors *cors.Cors
	auth *auth.JWT
}

// NewMiddleware builds the shared middleware stack from config
func NewMiddleware(cfg app.Config) *Middleware {
	return &Middleware{
		cors: cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllow,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
		auth: auth.New(cfg.JWTSecret),
	}
}

// Wrap applies CORS to a handler
func (m *Middleware) Wrap(h http.Handler) http.Handler {
	return m.cors.Handler(h)
}

// Auth enforces JWT auth and adds the username to the request context
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := r.Header.Get("Authorization")
		if !strings.HasPrefix(b, "Bearer ") {
			http.Error(w, "no token", http.StatusUnauthorized)
			return
		}
		tok := strings.TrimPrefix(b, "Bearer ")
		username, err := m.auth.Verify(tok)
		if err != nil {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		// Pass along the username for downstream handlers
		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), username)))
	})
}
