package rest

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/deltahq/delta/internal/service/webhook"
	"github.com/deltahq/delta/pkg/ctxutil"
)

// GitHub caps webhook payloads at 25 MB.
const maxWebhookBytes = 25 << 20

const signaturePrefix = "sha256="

type webhookService interface {
	HandleEvent(ctx context.Context, event, delivery string, payload []byte) (*webhook.Result, error)
}

// WebhookHandler receives GitHub webhook deliveries.
type WebhookHandler struct {
	svc    webhookService
	secret []byte
	log    *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler. An empty secret makes every
// delivery fail with 500.
func NewWebhookHandler(svc webhookService, secret string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, secret: []byte(secret), log: logger.With("handler", "webhook")}
}

type webhookResponse struct {
	Event        string `json:"event"`
	Handled      bool   `json:"handled"`
	Repositories int    `json:"repositories"`
	NewCommits   int    `json:"new_commits"`
}

// GitHub handles POST /webhooks/github.
func (h *WebhookHandler) GitHub(w http.ResponseWriter, r *http.Request) {
	if len(h.secret) == 0 {
		h.log.ErrorContext(r.Context(), "webhook secret not configured")
		writeError(w, http.StatusInternalServerError, "webhook secret not configured")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(body) > maxWebhookBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	if !verifySignature(h.secret, body, r.Header.Get("X-Hub-Signature-256")) {
		h.log.WarnContext(r.Context(), "webhook signature mismatch",
			slog.String("delivery_id", r.Header.Get("X-GitHub-Delivery")))
		writeError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	event := r.Header.Get("X-GitHub-Event")
	if event == "" {
		writeError(w, http.StatusBadRequest, "missing X-GitHub-Event header")
		return
	}
	delivery := r.Header.Get("X-GitHub-Delivery")
	ctx := ctxutil.WithDeliveryID(r.Context(), delivery)

	result, err := h.svc.HandleEvent(ctx, event, delivery, body)
	if err != nil {
		handleError(h.log, w, r.WithContext(ctx), err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Event:        result.Event,
		Handled:      result.Handled,
		Repositories: result.Repositories,
		NewCommits:   result.NewCommits,
	})
}

// verifySignature checks a "sha256=<hex>" HMAC of body in constant time.
func verifySignature(secret, body []byte, header string) bool {
	sig, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
