package session

import (
	"strconv"
	"strings"
)

// Input is a line typed in work mode: Quit or Change.
type Input interface {
	isInput()
}

// Choice is a line typed in the record chooser: Quit or Pick.
type Choice interface {
	isChoice()
}

// Quit ends the work loop or leaves the record chooser.
type Quit struct{}

// Change applies a delta to the current score.
type Change struct {
	Delta Delta
}

// Pick selects a record by zero-based position.
type Pick struct {
	Index int
}

func (Quit) isInput()   {}
func (Quit) isChoice()  {}
func (Change) isInput() {}
func (Pick) isChoice()  {}

func isQuit(s string) bool {
	return strings.EqualFold(s, "q")
}

// ParseInput maps "q" or "Q" to Quit and anything else through ParseDelta.
func ParseInput(s string) (Input, error) {
	s = strings.TrimSpace(s)
	if isQuit(s) {
		return Quit{}, nil
	}
	d, err := ParseDelta(s)
	if err != nil {
		return nil, err
	}
	return Change{Delta: d}, nil
}

// ParseChoice maps "q" or "Q" to Quit and a 1-based number in [1, n] to a Pick.
func ParseChoice(s string, n int) (Choice, error) {
	s = strings.TrimSpace(s)
	if isQuit(s) {
		return Quit{}, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalid(s, "please enter a number")
	}
	if i < 1 || i > n {
		return nil, invalid(s, "please enter a valid file number")
	}
	return Pick{Index: i - 1}, nil
}
