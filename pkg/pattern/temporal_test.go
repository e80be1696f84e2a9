package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmind/sigmem-go/pkg/pattern"
)

func TestAppendTemporalCopiesSequence(t *testing.T) {
	ix := pattern.NewIndex()
	seq := []string{"the", "cat", "sat", "down"}

	ix.AppendTemporal(seq, 0.5)
	seq[3] = "mutated"

	tok, ok := ix.MatchTemporal("the cat sat")
	assert.True(t, ok)
	assert.Equal(t, "down", tok)
}

func TestMatchTemporalFirstInsertedWins(t *testing.T) {
	ix := pattern.NewIndex()
	ix.AppendTemporal([]string{"the", "cat", "sat", "down"}, 0.5)
	ix.AppendTemporal([]string{"the", "cat", "sat", "up"}, 5.0)

	tok, ok := ix.MatchTemporal("the cat sat")
	assert.True(t, ok)
	assert.Equal(t, "down", tok, "insertion order wins, not frequency")
}

func TestMatchTemporalIsCaseInsensitive(t *testing.T) {
	ix := pattern.NewIndex()
	ix.AppendTemporal([]string{"The", "Cat", "Sat", "down"}, 0.5)

	tok, ok := ix.MatchTemporal("the cat sat")
	assert.True(t, ok)
	assert.Equal(t, "down", tok)
}

func TestMatchTemporalSkipsShortSequences(t *testing.T) {
	ix := pattern.NewIndex()
	ix.AppendTemporal([]string{"the", "cat", "sat"}, 0.5)

	_, ok := ix.MatchTemporal("the cat sat")
	assert.False(t, ok)
}

func TestMatchTemporalNoMatch(t *testing.T) {
	ix := pattern.NewIndex()
	ix.AppendTemporal([]string{"the", "cat", "sat", "down"}, 0.5)

	_, ok := ix.MatchTemporal("an unrelated context")
	assert.False(t, ok)
}
