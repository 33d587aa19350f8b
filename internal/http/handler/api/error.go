package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/core/service"
	"github.com/pkg/errors"
)

const (
	KindValidationError    = "validation-error"
	KindConflict           = "conflict"
	KindNotFound           = "not-found"
	KindPolicyViolation    = "policy-violation"
	KindInvalidCredentials = "invalid-credentials"
	KindInternalError      = "internal-error"
)

type ErrorResponse struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// handleError maps core errors to their stable machine-readable kind.
// Anything unexpected is logged and surfaced as an opaque internal
// error.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *model.ValidationError
		policyErr     *model.PolicyError
	)

	switch {
	case errors.As(err, &validationErr):
		encodeError(w, r, http.StatusBadRequest, KindValidationError, validationErr.Error())
	case errors.As(err, &policyErr):
		encodeError(w, r, http.StatusBadRequest, KindPolicyViolation, policyErr.Error())
	case errors.Is(err, port.ErrAlreadyExists):
		encodeError(w, r, http.StatusConflict, KindConflict, "a task with the same title already exists")
	case errors.Is(err, port.ErrNotFound):
		encodeError(w, r, http.StatusNotFound, KindNotFound, "task not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		encodeError(w, r, http.StatusUnauthorized, KindInvalidCredentials, "invalid email or password")
	default:
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
		encodeError(w, r, http.StatusInternalServerError, KindInternalError, "something went wrong")
	}
}

func encodeError(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	res := ErrorResponse{
		Error: ErrorPayload{
			Kind:    kind,
			Message: message,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

func encodeResponse(w http.ResponseWriter, r *http.Request, status int, res any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}
