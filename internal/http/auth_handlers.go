package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ValerySM/realtime-chat/internal/store"
	"github.com/ValerySM/realtime-chat/pkg/auth"
)

type AuthAPI struct {
	DB  *store.Postgres
	JWT *auth.JWT
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResp struct {
	OK       bool   `json:"ok"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
}

type errorResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Register handles user signup
func (a *AuthAPI) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}

	if _, err := a.DB.CreateUser(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			writeError(w, http.StatusConflict, "user exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// Login verifies credentials and returns a JWT
func (a *AuthAPI) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}

	u, err := a.DB.VerifyUser(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Issue token (24h)
	tok, _ := a.JWT.Sign(u.Username, 24*time.Hour)
	writeJSON(w, tokenResp{OK: true, Token: tok, Username: u.Username})
}

// Me returns the authenticated username
func (a *AuthAPI) Me(w http.ResponseWriter, r *http.Request) {
	username := auth.Username(r.Context())
	if username == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, map[string]string{"username": username})
}

// send JSON with proper headers
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResp{OK: false, Error: msg})
}
