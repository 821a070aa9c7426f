package translation

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network call when no key is configured.
var ErrMissingAPIKey = errors.New("no API key was provided")

// TransportError means the request could not be sent or no reply arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means a reply arrived but did not match the expected schema.
// StatusCode and Body are set when the reply came over HTTP.
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to parse response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
