package result

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnknown is reported when a probe finished with neither a response nor an error.
var ErrUnknown = errors.New("unknown error: no response and no error reported")

// OutcomeKind tags the variant carried by an Outcome.
type OutcomeKind int

const (
	// OutcomeOK means the server answered with status 200.
	OutcomeOK OutcomeKind = iota
	// OutcomeHTTPError means the server answered with any other status.
	OutcomeHTTPError
	// OutcomeTransportError means the request failed before a response arrived
	// (DNS, connect, TLS, timeout).
	OutcomeTransportError
	// OutcomeUnknownError means there was no response and no reported cause.
	OutcomeUnknownError
)

// String returns a lowercase label for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown_error"
	}
}

// Outcome is the classified result of a single probe.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int   // set for OutcomeHTTPError
	Cause      error // set for OutcomeTransportError
}

// OK returns the success outcome.
func OK() Outcome { return Outcome{Kind: OutcomeOK} }

// HTTPError returns the outcome for a non-200 response.
func HTTPError(statusCode int) Outcome {
	return Outcome{Kind: OutcomeHTTPError, StatusCode: statusCode}
}

// TransportError returns the outcome for a request that never got a response.
func TransportError(cause error) Outcome {
	return Outcome{Kind: OutcomeTransportError, Cause: cause}
}

// UnknownError returns the fallback outcome.
func UnknownError() Outcome { return Outcome{Kind: OutcomeUnknownError} }

// IsOK reports whether the link is reachable.
func (o Outcome) IsOK() bool { return o.Kind == OutcomeOK }

// Err converts the outcome to an error, or nil for OutcomeOK.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeOK:
		return nil
	case OutcomeHTTPError:
		return &HTTPStatusError{StatusCode: o.StatusCode}
	case OutcomeTransportError:
		if o.Cause != nil {
			return o.Cause
		}
		return ErrUnknown
	default:
		return ErrUnknown
	}
}

// String renders the outcome for human-readable output.
func (o Outcome) String() string {
	if o.Kind == OutcomeOK {
		return "OK"
	}
	return o.Err().Error()
}

// HTTPStatusError reports a reachable server that answered with a non-200 status.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return fmt.Sprintf("HTTP %d %s", e.StatusCode, text)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Classify maps a finished HTTP exchange to an Outcome. Only an exact 200
// counts as success; every other status is an HTTP error even when err is nil.
func Classify(resp *http.Response, err error) Outcome {
	switch {
	case resp != nil && resp.StatusCode == http.StatusOK:
		return OK()
	case resp != nil:
		return HTTPError(resp.StatusCode)
	case err != nil:
		return TransportError(err)
	default:
		return UnknownError()
	}
}
