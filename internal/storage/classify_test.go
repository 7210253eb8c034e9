package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", &googleapi.Error{Code: 429}, true},
		{"request timeout", &googleapi.Error{Code: 408}, true},
		{"server error", &googleapi.Error{Code: 500}, true},
		{"backend unavailable", &googleapi.Error{Code: 503}, true},
		{"unauthorized", &googleapi.Error{Code: 401}, false},
		{"forbidden", &googleapi.Error{Code: 403}, false},
		{"bad request", &googleapi.Error{Code: 400}, false},
		{"not found", &googleapi.Error{Code: 404}, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("upload: %w", context.DeadlineExceeded), true},
		{"network timeout", &net.DNSError{Err: "timeout", IsTimeout: true}, true},
		{"wrapped api error", fmt.Errorf("append: %w", &googleapi.Error{Code: 503}), true},
		{"unknown error", errors.New("something else"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, expected %v", tt.err, got, tt.want)
			}
		})
	}
}
