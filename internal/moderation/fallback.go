package moderation

import (
	"context"
	"log/slog"
	"time"
)

// DefaultRemoteTimeout bounds a single remote evaluation attempt.
const DefaultRemoteTimeout = 10 * time.Second

// Chain tries the remote moderator once within a timeout and falls back to
// the rule-based moderator on any failure, so moderation always produces a
// decision.
type Chain struct {
	remote  Moderator
	rules   Moderator
	timeout time.Duration
	logger  *slog.Logger
}

var _ Moderator = (*Chain)(nil)

// NewChain wires the fallback chain. remote may be nil, in which case only
// the rules run. A non-positive timeout falls back to DefaultRemoteTimeout.
func NewChain(remote, rules Moderator, timeout time.Duration, logger *slog.Logger) *Chain {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &Chain{remote: remote, rules: rules, timeout: timeout, logger: logger}
}

// Evaluate delegates to the remote strategy and degrades to the rules when
// the remote call fails, times out, or returns an unusable reply.
func (c *Chain) Evaluate(ctx context.Context, candidate Candidate) (Decision, error) {
	if c.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, c.timeout)
		decision, err := c.remote.Evaluate(remoteCtx, candidate)
		cancel()
		if err == nil {
			return decision, nil
		}
		if c.logger != nil {
			c.logger.Warn("remote moderation unavailable, falling back to rules", "error", err)
		}
	}
	return c.rules.Evaluate(ctx, candidate)
}
