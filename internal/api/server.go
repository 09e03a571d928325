// SPDX-License-Identifier: MIT

// Package api provides the HTTP surface of the IDX gateway.
package api

import (
	"context"
	"encoding/json"

	"github.com/idx-agent/gateway/internal/claims"
	"github.com/idx-agent/gateway/internal/config"
	"github.com/idx-agent/gateway/internal/health"
)

// AgentClient is the upstream surface the handlers need. *eidoagent.Client
// satisfies it; tests substitute stubs.
type AgentClient interface {
	Incidents(ctx context.Context) (json.RawMessage, error)
	Ingest(ctx context.Context, payload any) (map[string]any, error)
}

// Server holds the gateway's injected dependencies. It owns no hidden state:
// the claim store and Agent client are constructed by the caller.
type Server struct {
	cfg    config.Config
	agent  AgentClient
	claims *claims.Store
	health *health.Manager
}

// New constructs a Server from its dependencies.
func New(cfg config.Config, agent AgentClient, store *claims.Store, hm *health.Manager) *Server {
	return &Server{
		cfg:    cfg,
		agent:  agent,
		claims: store,
		health: hm,
	}
}
