package session

import (
	"errors"
	"slices"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/utils"
)

// Selector resumes one of a fixed list of record files.
type Selector struct {
	store Store
	files []string
}

// NewSelector returns a Selector over files, in display order.
func NewSelector(store Store, files []string) *Selector {
	return &Selector{store: store, files: slices.Clone(files)}
}

// Files returns the candidates in display order.
func (s *Selector) Files() []string {
	return slices.Clone(s.files)
}

// Empty reports whether there is nothing to choose from.
func (s *Selector) Empty() bool {
	return len(s.files) == 0
}

// Resume reads the last row of the picked file and returns it as a start.
// A pick out of range, or a file with no rows yet, is an *InputError. Broken
// rows and I/O failures are fatal.
func (s *Selector) Resume(p Pick) (Start, error) {
	if p.Index < 0 || p.Index >= len(s.files) {
		return Start{}, invalid("", "please enter a valid file number")
	}
	name := s.files[p.Index]

	row, err := s.store.Last(name)
	if errors.Is(err, record.ErrNoRows) {
		return Start{}, invalid(name, "record has no rows yet")
	}
	if err != nil {
		return Start{}, err
	}

	utils.LogDebug("resumed %s at score %d", name, row.Score)
	return Start{Name: name, Score: row.Score}, nil
}
