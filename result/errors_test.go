package result

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		want       ErrorCategory
	}{
		{
			name:       "4xx status",
			statusCode: 404,
			want:       Category4xx,
		},
		{
			name:       "401 status",
			statusCode: 401,
			want:       Category4xx,
		},
		{
			name:       "5xx status",
			statusCode: 503,
			want:       Category5xx,
		},
		{
			name:       "3xx status",
			statusCode: 301,
			want:       Category3xx,
		},
		{
			name: "timeout error",
			err:  context.DeadlineExceeded,
			want: CategoryTimeout,
		},
		{
			name: "wrapped timeout from http client",
			err:  &url.Error{Op: "Head", URL: "http://example.com", Err: context.DeadlineExceeded},
			want: CategoryTimeout,
		},
		{
			name: "canceled run",
			err:  fmt.Errorf("probe: %w", context.Canceled),
			want: CategoryCanceled,
		},
		{
			name: "connection refused",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")},
			want: CategoryConnectionRefused,
		},
		{
			name: "no error no status",
			want: CategoryUnknown,
		},
		{
			name: "opaque error",
			err:  errors.New("something odd"),
			want: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err, tt.statusCode)
			if got != tt.want {
				t.Errorf("ClassifyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyError_DNSFailure(t *testing.T) {
	dnsErr := &net.DNSError{
		Err:  "no such host",
		Name: "example.invalid",
	}

	got := ClassifyError(dnsErr, 0)
	if got != CategoryDNSFailure {
		t.Errorf("ClassifyError(DNSError) = %v, want %v", got, CategoryDNSFailure)
	}
}

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		cat  ErrorCategory
		want string
	}{
		{CategoryTimeout, "Timeouts"},
		{CategoryDNSFailure, "DNS Failures"},
		{CategoryConnectionRefused, "Connection Refused"},
		{CategoryCanceled, "Canceled"},
		{Category3xx, "Unfollowed Redirects (3xx)"},
		{Category4xx, "Client Errors (4xx)"},
		{Category5xx, "Server Errors (5xx)"},
		{CategoryUnknown, "Other Errors"},
	}

	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			got := FormatCategory(tt.cat)
			if got != tt.want {
				t.Errorf("FormatCategory(%v) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}
