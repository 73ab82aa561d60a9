package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAgentNotFound indicates the endpoint is not registered.
var ErrAgentNotFound = errors.New("agent not found")

// ErrInvalidURL indicates a registration URL that is not an absolute
// http(s) URL. Rejected before any network I/O happens.
var ErrInvalidURL = errors.New("invalid agent url")

// UpstreamError indicates the agent's card could not be fetched: connection
// failure, timeout, or a non-success status from the agent.
type UpstreamError struct {
	URL string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch agent card from %s: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// CardValidationError indicates a card was fetched but is structurally
// invalid. Problems lists every failed field check.
type CardValidationError struct {
	Problems []string
}

func (e *CardValidationError) Error() string {
	return "invalid agent card: " + strings.Join(e.Problems, "; ")
}
