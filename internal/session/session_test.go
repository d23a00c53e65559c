package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
)

func TestSession_Apply(t *testing.T) {
	store := newMemStore()
	store.files["s.csv"] = []record.Row{{Score: 100}}
	s := New(store, Start{Name: "s.csv", Score: 100})
	assert.Equal(t, "s.csv", s.Name())

	row, err := s.Apply(DeltaMinus5)
	require.NoError(t, err)
	assert.Equal(t, 95, row.Score)
	assert.Equal(t, 95, s.Score())

	_, err = s.Apply(DeltaPlus20)
	require.NoError(t, err)
	assert.Equal(t, 115, s.Score())

	_, err = s.Apply(DeltaZero)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 95, 115, 115}, store.scores("s.csv"))
}

func TestSession_ScoreMayGoNegative(t *testing.T) {
	store := newMemStore()
	store.files["s.csv"] = []record.Row{{Score: 10}}
	s := New(store, Start{Name: "s.csv", Score: 10})

	_, err := s.Apply(DeltaMinus20)
	require.NoError(t, err)
	assert.Equal(t, -10, s.Score())
}

func TestSession_FailedAppendKeepsScore(t *testing.T) {
	store := newMemStore()
	store.files["s.csv"] = []record.Row{{Score: 10}}
	s := New(store, Start{Name: "s.csv", Score: 10})

	store.failWith = errDisk
	_, err := s.Apply(DeltaPlus20)
	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, 10, s.Score())
}
