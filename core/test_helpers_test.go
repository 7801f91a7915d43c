// Package core_test contains test helpers for rankwalk/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rankwalk/core"
)

// Common vertex counts used across core tests (avoid magic numbers in test bodies).
const (
	NZero  = 0
	NOne   = 1
	NSmall = 4
)

// MustErrorIs fails the test when err does not match the expected sentinel.
func MustErrorIs(t *testing.T, err, want error, msg string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s: expected %v, got %v", msg, want, err)
	}
}

// MustErrorNil fails the test when err is non-nil.
func MustErrorNil(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// MustEqualInt fails the test when got != want.
func MustEqualInt(t *testing.T, got, want int, msg string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: expected %d, got %d", msg, want, got)
	}
}

// MustEqualBool fails the test when got != want.
func MustEqualBool(t *testing.T, got, want bool, msg string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: expected %v, got %v", msg, want, got)
	}
}

// NewPath returns a fresh path graph 0-1-2-...-(n-1).
func NewPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	MustErrorNil(t, err, "NewGraph(path)")
	for i := 0; i+1 < n; i++ {
		MustErrorNil(t, g.AddEdge(i, i+1), "AddEdge(path)")
	}
	return g
}
