package storage

import (
	"context"
	"errors"
	"net"
	"net/http"

	"google.golang.org/api/googleapi"
)

// IsTransient reports whether err is expected to succeed on retry: network
// failures, timeouts, rate limiting and server-side 5xx responses. Anything
// else (authorization failures, malformed requests, unknown errors) is treated
// as permanent and surfaced without retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests ||
			apiErr.Code == http.StatusRequestTimeout ||
			apiErr.Code >= http.StatusInternalServerError
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
