package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/internal/service/auth"
)

type authService interface {
	BeginLogin(ctx context.Context) (string, string, error)
	CompleteLogin(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// AuthHandler serves the GitHub OAuth flow and the current-user endpoint.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        userResponse `json:"user"`
}

// Login handles GET /auth/github/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	url, _, err := h.svc.BeginLogin(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// Callback handles GET /auth/github/callback.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if denied := q.Get("error"); denied != "" {
		h.log.WarnContext(r.Context(), "github authorization denied", slog.String("reason", denied))
		writeError(w, http.StatusUnauthorized, "authorization denied")
		return
	}

	result, err := h.svc.CompleteLogin(r.Context(), auth.LoginInput{
		Code:  q.Get("code"),
		State: q.Get("state"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
		User:        toUserResponse(result.User),
	})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
