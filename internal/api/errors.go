// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/idx-agent/gateway/internal/eidoagent"
	"github.com/idx-agent/gateway/internal/log"
)

// Error codes surfaced in the "error" field of failure responses.
const (
	codeInvalidFileType  = "invalid_file_type"
	codeInvalidPayload   = "invalid_payload"
	codeAgentError       = "agent_error"
	codeAgentUnreachable = "agent_unreachable"
	codeAgentBadResponse = "agent_bad_response"
	codeInternalError    = "internal_error"
)

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeClientError writes a 4xx failure caused by the caller.
func writeClientError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorBody{Error: code, Detail: detail})
}

// writeAgentError maps an upstream client failure onto the gateway's error
// contract: status errors pass the Agent's code through, transport and
// protocol failures become a bad-gateway class, everything else is internal.
func writeAgentError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	var ae *eidoagent.AgentError
	switch {
	case errors.Is(err, eidoagent.ErrAgentStatus) && errors.As(err, &ae):
		logger.Warn().
			Str(log.FieldEvent, "agent.status_error").
			Str(log.FieldOperation, ae.Operation).
			Int(log.FieldStatus, ae.Status).
			Msg("upstream returned error status")
		writeJSON(w, ae.Status, errorBody{
			Error:  codeAgentError,
			Detail: fmt.Sprintf("Error from EIDO Agent: %s", ae.Body),
		})

	case errors.Is(err, eidoagent.ErrAgentUnreachable):
		logger.Error().
			Str(log.FieldEvent, "agent.unreachable").
			Err(err).
			Msg("could not reach EIDO Agent")
		writeJSON(w, http.StatusBadGateway, errorBody{
			Error:  codeAgentUnreachable,
			Detail: "Could not connect to EIDO Agent.",
		})

	case errors.Is(err, eidoagent.ErrAgentBadResponse):
		logger.Error().
			Str(log.FieldEvent, "agent.bad_response").
			Err(err).
			Msg("EIDO Agent returned an unparseable success response")
		writeJSON(w, http.StatusBadGateway, errorBody{
			Error:  codeAgentBadResponse,
			Detail: "Received an invalid response from the EIDO Agent.",
		})

	default:
		logger.Error().
			Str(log.FieldEvent, "internal.error").
			Err(err).
			Msg("unexpected error")
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:  codeInternalError,
			Detail: "An unexpected error occurred.",
		})
	}
}
