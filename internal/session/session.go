package session

import (
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/utils"
)

// Store is the record storage the state machines write through.
// *record.Store implements it.
type Store interface {
	Exists(name string) (bool, error)
	Create(name string, score int) (record.Row, error)
	Last(name string) (record.Row, error)
	Append(name string, score int) (record.Row, error)
}

// Start is the state a work session begins from.
type Start struct {
	Name  string
	Score int
}

// Session applies deltas to one record file. It keeps the current score in
// memory and appends one row per applied delta.
type Session struct {
	store Store
	name  string
	score int
}

// New starts a session on the record described by start.
func New(store Store, start Start) *Session {
	return &Session{
		store: store,
		name:  start.Name,
		score: start.Score,
	}
}

// Name returns the record file name.
func (s *Session) Name() string {
	return s.name
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Apply appends current+d as a new row. The current score only moves when
// the append succeeds; a failed append is fatal for the session.
func (s *Session) Apply(d Delta) (record.Row, error) {
	row, err := s.store.Append(s.name, s.score+int(d))
	if err != nil {
		utils.LogDebug("append to %s failed: %v", s.name, err)
		return record.Row{}, err
	}
	utils.LogDebug("%s: %d %s -> %d", s.name, s.score, d, row.Score)
	s.score = row.Score
	return row, nil
}
