// SPDX-License-Identifier: MIT
package eidoagent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientIncidents5xx(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer s.Close()

	_, err := newTestClient(s.URL).Incidents(context.Background())
	if !errors.Is(err, ErrAgentStatus) {
		t.Fatalf("expected ErrAgentStatus, got %v", err)
	}

	var ae *AgentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AgentError, got %T", err)
	}
	if ae.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", ae.Status)
	}
	if !strings.Contains(ae.Body, "server error") {
		t.Errorf("body %q missing upstream text", ae.Body)
	}
}

func TestClientIngestUpstreamStatusCarriesBody(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "schema rejected", http.StatusUnprocessableEntity)
	}))
	defer s.Close()

	_, err := newTestClient(s.URL).Ingest(context.Background(), map[string]any{"a": 1})
	var ae *AgentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AgentError, got %v", err)
	}
	if ae.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", ae.Status)
	}
	if !strings.Contains(ae.Error(), "schema rejected") {
		t.Errorf("error text %q missing upstream body", ae.Error())
	}
}

func TestClientConnectionRefused(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	s := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := s.URL
	s.Close()

	c := newTestClient(base)
	if _, err := c.Incidents(context.Background()); !errors.Is(err, ErrAgentUnreachable) {
		t.Fatalf("Incidents: expected ErrAgentUnreachable, got %v", err)
	}
	if _, err := c.Ingest(context.Background(), map[string]any{}); !errors.Is(err, ErrAgentUnreachable) {
		t.Fatalf("Ingest: expected ErrAgentUnreachable, got %v", err)
	}
	if err := c.Ping(context.Background()); !errors.Is(err, ErrAgentUnreachable) {
		t.Fatalf("Ping: expected ErrAgentUnreachable, got %v", err)
	}
}

func TestClientTimeoutIsUnreachable(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer s.Close()

	_, err := newTestClient(s.URL).Incidents(context.Background())
	if !errors.Is(err, ErrAgentUnreachable) {
		t.Fatalf("expected ErrAgentUnreachable on timeout, got %v", err)
	}
}

func TestClientIncidentsInvalidJSON(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not-json"))
	}))
	defer s.Close()

	_, err := newTestClient(s.URL).Incidents(context.Background())
	if !errors.Is(err, ErrAgentBadResponse) {
		t.Fatalf("expected ErrAgentBadResponse, got %v", err)
	}
}

func TestClientIngestSuccessStatusNonJSONBody(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>accepted</html>"))
	}))
	defer s.Close()

	_, err := newTestClient(s.URL).Ingest(context.Background(), map[string]any{"a": 1})
	if !errors.Is(err, ErrAgentBadResponse) {
		t.Fatalf("expected ErrAgentBadResponse, got %v", err)
	}
}

func TestClientCancelledContext(t *testing.T) {
	started := make(chan struct{})
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		time.Sleep(time.Second)
	}))
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := newTestClient(s.URL).Incidents(ctx)
		errc <- err
	}()
	<-started
	cancel()

	if err := <-errc; !errors.Is(err, ErrAgentUnreachable) {
		t.Fatalf("expected transport-class error on cancellation, got %v", err)
	}
}

func TestAgentErrorText(t *testing.T) {
	err := &AgentError{
		Sentinel:  ErrAgentStatus,
		Operation: "ingest",
		Status:    500,
		Body:      "boom",
	}
	msg := err.Error()
	for _, want := range []string{"ingest", "HTTP 500", "boom"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error text %q missing %q", msg, want)
		}
	}
}
