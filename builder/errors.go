// SPDX-License-Identifier: MIT
// Package: rankwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach method context via fmt.Errorf("...: %w", ErrX).
//   - Algorithms never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrNegativeCount indicates a negative vertex or edge count was requested.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrNegativeCount) { /* report invalid size */ }.
var ErrNegativeCount = errors.New("builder: negative count")

// ErrTooManyEdges indicates the requested edge count exceeds the maximum
// possible for a simple graph, n·(n-1)/2.
// Usage: if errors.Is(err, ErrTooManyEdges) { /* lower m or raise n */ }.
var ErrTooManyEdges = errors.New("builder: edge count exceeds maximum")
