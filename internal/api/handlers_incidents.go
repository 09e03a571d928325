// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idx-agent/gateway/internal/log"
)

// handleListIncidents proxies the Agent's incident list. The body is passed
// through unmodified; the gateway never interprets incident fields.
func (s *Server) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	raw, err := s.agent.Incidents(r.Context())
	if err != nil {
		writeAgentError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

type claimResponse struct {
	Message string `json:"message"`
}

// handleClaimIncident records an incident identifier as claimed. The id is
// taken as-is: it is not validated against upstream incidents, and claiming
// twice is a no-op.
func (s *Server) handleClaimIncident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "incidentID")

	newly := s.claims.Claim(id)

	logger := log.WithComponentFromContext(r.Context(), "api")
	logger.Info().
		Str(log.FieldEvent, "incident.claimed").
		Str(log.FieldIncidentID, id).
		Bool("newly_claimed", newly).
		Msg("incident claimed")

	writeJSON(w, http.StatusOK, claimResponse{
		Message: fmt.Sprintf("Incident %s claimed.", id),
	})
}

// handleListClaimed returns the claimed identifiers in unspecified order.
func (s *Server) handleListClaimed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.claims.Claimed())
}

type correlationResponse struct {
	Status        string  `json:"status"`
	CorrelationID *string `json:"correlation_id"`
}

// handleCorrelate is a stub. The correlation algorithm is intentionally
// unimplemented; every payload yields the constant "new" response.
// TODO: replace the stub once the correlation service contract is settled.
func (s *Server) handleCorrelate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, correlationResponse{Status: "new"})
}
