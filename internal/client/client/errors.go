package client

import (
	"errors"
	"fmt"
)

// ErrNetwork matches every *NetworkError.
var ErrNetwork = errors.New("network error")

// errEncode marks a request body that could not be encoded; nothing was sent.
var errEncode = errors.New("encode request")

// NetworkError reports a failed gateway call. StatusCode is 0 when no HTTP
// response was received.
type NetworkError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: %s %s: status %d: %s", e.Op, e.Method, e.URL, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s %s: status %d", e.Op, e.Method, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %s %s: failed", e.Op, e.Method, e.URL)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is makes every NetworkError match ErrNetwork.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// Summary is a short user-facing description of the failure.
func (e *NetworkError) Summary() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.StatusCode != 0:
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	case errors.Is(e.Err, errEncode):
		return "the request could not be encoded"
	default:
		return "could not reach the server"
	}
}
