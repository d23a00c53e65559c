package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
)

func TestCreator_HappyPath(t *testing.T) {
	store := newMemStore()
	c := NewCreator(store)
	assert.Equal(t, AwaitFilename, c.State())
	assert.Contains(t, c.Prompt(), "file name")

	require.NoError(t, c.Submit("  session1 "))
	assert.Equal(t, AwaitInitialScore, c.State())
	assert.Equal(t, "session1.csv", c.Name())
	assert.Contains(t, c.Prompt(), "greater than zero")

	require.NoError(t, c.Submit("100"))
	assert.Equal(t, Created, c.State())
	assert.Equal(t, Start{Name: "session1.csv", Score: 100}, c.Start())
	assert.Equal(t, 100, c.Row().Score)
	assert.Equal(t, []int{100}, store.scores("session1.csv"))

	assert.ErrorIs(t, c.Submit("again"), ErrCreated)
}

func TestCreator_RejectsBadNames(t *testing.T) {
	store := newMemStore()
	store.files["taken.csv"] = []record.Row{{Score: 1}}
	c := NewCreator(store)

	for _, in := range []string{"", "   ", "taken", "../escape", `dir\name`, ".."} {
		err := c.Submit(in)
		assert.True(t, IsInputError(err), "%q should be rejected", in)
		assert.Equal(t, AwaitFilename, c.State())
		assert.Empty(t, c.Name())
	}

	require.NoError(t, c.Submit("fresh"))
	assert.Equal(t, AwaitInitialScore, c.State())
}

func TestCreator_RejectsBadScores(t *testing.T) {
	store := newMemStore()
	c := NewCreator(store)
	require.NoError(t, c.Submit("s"))

	for _, in := range []string{"0", "-3", "ten", ""} {
		err := c.Submit(in)
		assert.True(t, IsInputError(err), "%q should be rejected", in)
		assert.Equal(t, AwaitInitialScore, c.State())
	}
	assert.Zero(t, store.creations)

	require.NoError(t, c.Submit("5"))
	assert.Equal(t, Created, c.State())
}

func TestCreator_LostRaceGoesBackToFilename(t *testing.T) {
	store := newMemStore()
	c := NewCreator(store)
	require.NoError(t, c.Submit("race"))

	store.files["race.csv"] = []record.Row{{Score: 9}}

	err := c.Submit("50")
	assert.True(t, IsInputError(err))
	assert.Equal(t, AwaitFilename, c.State())
	assert.Empty(t, c.Name())
	assert.Equal(t, []int{9}, store.scores("race.csv"))
}

func TestCreator_StoreFailureIsFatal(t *testing.T) {
	store := newMemStore()
	c := NewCreator(store)
	require.NoError(t, c.Submit("s"))

	store.failWith = errDisk
	err := c.Submit("10")
	require.ErrorIs(t, err, errDisk)
	assert.False(t, IsInputError(err))
	assert.Equal(t, AwaitInitialScore, c.State())
}
