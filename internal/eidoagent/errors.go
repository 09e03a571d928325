// SPDX-License-Identifier: MIT

package eidoagent

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.

	// ErrAgentStatus means the Agent replied with a non-2xx HTTP status.
	// The wrapping AgentError carries the status code and body text.
	ErrAgentStatus = errors.New("agent: upstream returned error status")

	// ErrAgentUnreachable means the request never produced an HTTP response:
	// connection refused, DNS failure, timeout. The specific network cause is
	// deliberately masked behind this one sentinel.
	ErrAgentUnreachable = errors.New("agent: host unreachable or transport failure")

	// ErrAgentBadResponse means the Agent replied with a success status but a
	// body that could not be decoded as JSON.
	ErrAgentBadResponse = errors.New("agent: invalid response format or malformed data")
)

// AgentError is a rich error type that wraps the sentinel errors with context.
type AgentError struct {
	Sentinel  error
	Operation string
	Status    int
	Body      string
	Err       error // Nested lower-level error (e.g. net.Error)
}

func (e *AgentError) Error() string {
	msg := fmt.Sprintf("eidoagent: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AgentError) Unwrap() error {
	return e.Sentinel
}
