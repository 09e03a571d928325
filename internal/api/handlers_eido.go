// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/idx-agent/gateway/internal/log"
)

// handleUploadEIDO accepts a multipart EIDO file, validates it client-side
// (filename suffix, JSON well-formedness) and forwards the decoded payload to
// the Agent's ingest endpoint. Client-side failures are 400s; everything
// after the forward follows the agent error mapping.
func (s *Server) handleUploadEIDO(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeClientError(w, http.StatusBadRequest, codeInvalidPayload,
			`Request must be a multipart form with a "file" part.`)
		return
	}
	defer file.Close()

	// Suffix check only, case-sensitive. Content-Type is ignored.
	if !strings.HasSuffix(header.Filename, ".json") {
		writeClientError(w, http.StatusBadRequest, codeInvalidFileType,
			"Invalid file type. Only .json files are accepted.")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeClientError(w, http.StatusBadRequest, codeInvalidPayload,
			"Could not read uploaded file.")
		return
	}

	var payload any
	if err := json.Unmarshal(content, &payload); err != nil {
		writeClientError(w, http.StatusBadRequest, codeInvalidPayload,
			"Invalid JSON format in uploaded file.")
		return
	}

	out, err := s.agent.Ingest(r.Context(), payload)
	if err != nil {
		writeAgentError(w, r, err)
		return
	}

	logger := log.WithComponentFromContext(r.Context(), "api")
	logger.Info().
		Str(log.FieldEvent, "eido.ingested").
		Str("filename", header.Filename).
		Int("bytes", len(content)).
		Msg("EIDO file forwarded to agent")

	writeJSON(w, http.StatusOK, out)
}
