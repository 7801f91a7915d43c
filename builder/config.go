// SPDX-License-Identifier: MIT
// Package: rankwalk/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//   - No package globals: an unseeded run gets its own time-seeded source,
//     so two unseeded calls are independent but never share hidden state.

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; resolved to non-nil before use.
	rng *rand.Rand
}

// newBuilderConfig constructs a config and applies all options in order.
// A missing RNG resolves to a time-seeded local source, keeping downstream
// code branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{rng: nil}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the unseeded default.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
