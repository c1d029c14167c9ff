package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/netx"
	"github.com/lucy1234dev/server/internal/shared"
)

var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx reply of the server.
type APIError struct {
	Status           int
	Detail           string
	RemainingSeconds int
}

func (e *APIError) Error() string { return e.Detail }

// Unwrap maps the HTTP status back to the sentinel the server started from.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return common.ErrorInvalidInput
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusTooManyRequests:
		return common.ErrorThrottled
	default:
		return common.ErrorInternal
	}
}

func toAPIError(se *netx.StatusError) *APIError {
	e := &APIError{Status: se.Code}

	var body shared.ErrorResponse
	if err := json.Unmarshal(se.Body, &body); err == nil && body.Detail != "" {
		e.Detail = body.Detail
		e.RemainingSeconds = body.RemainingSeconds
	} else {
		e.Detail = http.StatusText(se.Code)
	}

	if e.RemainingSeconds == 0 {
		if n, err := strconv.Atoi(se.Header.Get(common.RetryAfterHeader)); err == nil {
			e.RemainingSeconds = n
		}
	}
	return e
}
