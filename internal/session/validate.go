// Package session holds the score logger's input validation and the state
// machines for creating a record, resuming one, and appending to it.
//
// Nothing here reads a terminal. Screens and the line console feed strings in
// and render the results.
package session

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Delta is a permitted score change.
type Delta int

// The permitted deltas. The set is closed.
const (
	DeltaMinus20 Delta = -20
	DeltaMinus10 Delta = -10
	DeltaMinus5  Delta = -5
	DeltaZero    Delta = 0
	DeltaPlus20  Delta = 20
)

var deltas = []Delta{DeltaMinus20, DeltaMinus10, DeltaMinus5, DeltaZero, DeltaPlus20}

// Deltas returns the permitted deltas in ascending order.
func Deltas() []Delta {
	return slices.Clone(deltas)
}

func (d Delta) String() string {
	if d == 0 {
		return "0"
	}
	return fmt.Sprintf("%+d", int(d))
}

// DeltaList renders the permitted deltas for prompts, e.g. "-20, -10, -5, 0 or +20".
func DeltaList() string {
	parts := make([]string, len(deltas))
	for i, d := range deltas {
		parts[i] = d.String()
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

// ParseInitialScore accepts a base-10 integer strictly greater than zero.
func ParseInitialScore(s string) (int, error) {
	s = strings.TrimSpace(s)
	score, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid(s, "please enter a valid integer")
	}
	if score <= 0 {
		return 0, invalid(s, "score must be greater than zero")
	}
	return score, nil
}

// ParseDelta accepts a base-10 integer that is one of the permitted deltas.
func ParseDelta(s string) (Delta, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid(s, "please enter a valid integer")
	}
	d := Delta(n)
	if !slices.Contains(deltas, d) {
		return 0, invalid(s, "score change must be one of "+DeltaList())
	}
	return d, nil
}
