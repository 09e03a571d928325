// SPDX-License-Identifier: MIT

package health

import (
	"context"
	"time"
)

// Pinger reports whether the upstream Agent can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AgentChecker reports readiness based on Agent reachability.
type AgentChecker struct {
	pinger  Pinger
	timeout time.Duration
}

// NewAgentChecker wraps pinger into a readiness checker. Probes are bounded
// by timeout so a hung Agent cannot stall the readiness endpoint.
func NewAgentChecker(pinger Pinger, timeout time.Duration) *AgentChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AgentChecker{pinger: pinger, timeout: timeout}
}

func (c *AgentChecker) Name() string { return "eido_agent" }

func (c *AgentChecker) Check(ctx context.Context) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.pinger.Ping(ctx); err != nil {
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}
	return CheckResult{Status: StatusHealthy}
}
