// SPDX-License-Identifier: MIT

// Package eidoagent provides the HTTP client for the upstream EIDO Agent
// service. Every failure is classified into one of three sentinel errors so
// that the API boundary can map them to distinct response classes.
package eidoagent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxErrorBody caps how much of an upstream error body is carried in an
// AgentError and echoed back to callers.
const maxErrorBody = 4 << 10

// Client talks to the EIDO Agent. The underlying http.Client is created once
// at construction and reused for every request.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the Agent at base. The timeout bounds every
// outbound request end to end.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Incidents fetches all incidents from the Agent. The body is returned as-is
// after a transport-level JSON check; the gateway never interprets incident
// fields.
func (c *Client) Incidents(ctx context.Context) (json.RawMessage, error) {
	const op = "incidents"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/v1/incidents", nil)
	if err != nil {
		return nil, &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		observeRequest(op, outcomeUnreachable)
		return nil, &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}
	defer res.Body.Close()

	if err := statusError(op, res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		observeRequest(op, outcomeUnreachable)
		return nil, &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}
	if !json.Valid(body) {
		observeRequest(op, outcomeBadResponse)
		return nil, &AgentError{Sentinel: ErrAgentBadResponse, Operation: op}
	}

	observeRequest(op, outcomeSuccess)
	return json.RawMessage(body), nil
}

// Ingest posts a decoded EIDO payload to the Agent and returns the Agent's
// response object. A success status with a non-JSON body is an
// ErrAgentBadResponse, distinct from any client-side parse failure.
func (c *Client) Ingest(ctx context.Context, payload any) (map[string]any, error) {
	const op = "ingest"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode ingest payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/v1/ingest", bytes.NewReader(body))
	if err != nil {
		return nil, &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		observeRequest(op, outcomeUnreachable)
		return nil, &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}
	defer res.Body.Close()

	if err := statusError(op, res); err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		observeRequest(op, outcomeBadResponse)
		return nil, &AgentError{Sentinel: ErrAgentBadResponse, Operation: op, Err: err}
	}

	observeRequest(op, outcomeSuccess)
	return out, nil
}

// Ping probes Agent reachability for readiness checks. Any HTTP response
// counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	const op = "ping"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/v1/incidents", nil)
	if err != nil {
		return &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		observeRequest(op, outcomeUnreachable)
		return &AgentError{Sentinel: ErrAgentUnreachable, Operation: op, Err: err}
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxErrorBody))
	_ = res.Body.Close()

	observeRequest(op, outcomeSuccess)
	return nil
}

// BaseURL reports the configured Agent base URL, for logging.
func (c *Client) BaseURL() string {
	return c.base
}

// statusError converts a non-2xx response into an AgentError carrying the
// upstream status and a bounded slice of its body.
func statusError(op string, res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	observeRequest(op, outcomeStatusError)
	return &AgentError{
		Sentinel:  ErrAgentStatus,
		Operation: op,
		Status:    res.StatusCode,
		Body:      strings.TrimSpace(string(body)),
	}
}
