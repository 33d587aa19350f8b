package client

import (
	"fmt"

	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

// APIError is the decoded error payload of a failed API call.
type APIError struct {
	StatusCode int
	Kind       string
	Message    string
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

var _ error = &APIError{}

func hasKind(err error, kind string) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

func IsNotFound(err error) bool {
	return hasKind(err, api.KindNotFound)
}

func IsConflict(err error) bool {
	return hasKind(err, api.KindConflict)
}

func IsPolicyViolation(err error) bool {
	return hasKind(err, api.KindPolicyViolation)
}

func IsValidationError(err error) bool {
	return hasKind(err, api.KindValidationError)
}
