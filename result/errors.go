package result

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrorCategory represents the classification of a failed link check.
type ErrorCategory string

const (
	CategoryTimeout           ErrorCategory = "timeout"
	CategoryDNSFailure        ErrorCategory = "dns_failure"
	CategoryConnectionRefused ErrorCategory = "connection_refused"
	CategoryCanceled          ErrorCategory = "canceled"
	Category3xx               ErrorCategory = "3xx"
	Category4xx               ErrorCategory = "4xx"
	Category5xx               ErrorCategory = "5xx"
	CategoryUnknown           ErrorCategory = "unknown"
)

// ClassifyError determines the error category based on the error and HTTP status code.
func ClassifyError(err error, statusCode int) ErrorCategory {
	if statusCode > 0 {
		switch {
		case statusCode >= 500:
			return Category5xx
		case statusCode >= 400:
			return Category4xx
		case statusCode >= 300:
			return Category3xx
		}
	}

	if err == nil {
		return CategoryUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	if errors.Is(err, context.Canceled) {
		return CategoryCanceled
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CategoryDNSFailure
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" && strings.Contains(opErr.Error(), "connection refused") {
			return CategoryConnectionRefused
		}
		if opErr.Timeout() {
			return CategoryTimeout
		}
	}

	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return CategoryTimeout
	}

	return CategoryUnknown
}

// FormatCategory returns a human-readable label for an error category.
func FormatCategory(cat ErrorCategory) string {
	switch cat {
	case CategoryTimeout:
		return "Timeouts"
	case CategoryDNSFailure:
		return "DNS Failures"
	case CategoryConnectionRefused:
		return "Connection Refused"
	case CategoryCanceled:
		return "Canceled"
	case Category3xx:
		return "Unfollowed Redirects (3xx)"
	case Category4xx:
		return "Client Errors (4xx)"
	case Category5xx:
		return "Server Errors (5xx)"
	default:
		return "Other Errors"
	}
}
