// SPDX-License-Identifier: MIT

package eidoagent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess     = "success"
	outcomeStatusError = "status_error"
	outcomeUnreachable = "unreachable"
	outcomeBadResponse = "bad_response"
)

var agentRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "idxgw_agent_requests_total",
	Help: "Outcome of outbound requests to the EIDO Agent",
}, []string{
	"operation", // incidents|ingest|ping
	"outcome",   // success|status_error|unreachable|bad_response
})

func observeRequest(operation, outcome string) {
	agentRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
