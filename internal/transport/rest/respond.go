package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
	"github.com/deltahq/delta/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// fetchErrorMessages are shown to clients instead of raw GitHub responses.
var fetchErrorMessages = map[domain.FetchErrorKind]struct {
	status  int
	message string
}{
	domain.FetchNotFound:    {http.StatusNotFound, "repository not found or access denied"},
	domain.FetchForbidden:   {http.StatusForbidden, "GitHub access denied, check permissions"},
	domain.FetchConflict:    {http.StatusConflict, "repository is empty or has no commits"},
	domain.FetchUnavailable: {http.StatusBadGateway, "GitHub is unavailable"},
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		fetch      *domain.FetchError
	)

	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: validation.Error()}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrNoCommits):
		writeError(w, http.StatusUnprocessableEntity, domain.ErrNoCommits.Error())
	case errors.As(err, &fetch):
		m, ok := fetchErrorMessages[fetch.Kind]
		if !ok {
			m = fetchErrorMessages[domain.FetchUnavailable]
		}
		log.WarnContext(r.Context(), "github request failed",
			append(ctxutil.LogAttrs(r.Context()), slog.String("error", err.Error()))...)
		writeError(w, m.status, m.message)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "request timed out")
	default:
		log.ErrorContext(r.Context(), "internal error",
			append(ctxutil.LogAttrs(r.Context()), slog.String("error", err.Error()))...)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body. An empty body leaves v untouched when
// allowEmpty is set.
func decodeJSON(r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
