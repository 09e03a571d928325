// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idx-agent/gateway/internal/api/middleware"
)

// Handler builds the gateway router with the canonical middleware stack.
func (s *Server) Handler() http.Handler {
	r := middleware.NewRouter(middleware.StackConfig{
		EnableSecurityHeaders: true,
		EnableMetrics:         true,
		EnableLogging:         true,
		RateLimitEnabled:      s.cfg.RateLimitEnabled,
		RateLimitRPS:          s.cfg.RateLimitRPS,
		RateLimitBurst:        s.cfg.RateLimitBurst,
	})

	r.Get("/healthz", s.health.ServeHealth)
	r.Get("/readyz", s.health.ServeReady)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/incidents", s.handleListIncidents)
		r.Get("/incidents/claimed", s.handleListClaimed)
		r.Post("/incidents/{incidentID}/claim", s.handleClaimIncident)
		r.Post("/incidents/correlate", s.handleCorrelate)
		r.Post("/eido/upload", s.handleUploadEIDO)
	})

	return r
}
