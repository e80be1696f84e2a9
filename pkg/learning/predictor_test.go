package learning_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmind/sigmem-go/pkg/learning"
	"github.com/sigmind/sigmem-go/pkg/sigel"
)

func newTestLearner() *learning.Learner {
	return learning.NewLearner(nil, rand.New(rand.NewSource(42)))
}

func TestPredictNextTemporalMatch(t *testing.T) {
	l := newTestLearner()
	sg := sigel.New(1, "athena")
	sg.Patterns.AppendTemporal([]string{"the", "cat", "sat", "down"}, 0.5)

	assert.Equal(t, "down", l.PredictNext(sg, []string{"the", "cat", "sat"}))
	assert.Equal(t, "down", l.PredictNext(sg, []string{"The", "Cat", "Sat"}),
		"temporal matching is case-insensitive")
}

func TestPredictNextSemanticFallback(t *testing.T) {
	l := newTestLearner()
	sg := sigel.New(1, "athena")
	sg.Patterns.Semantic.Associate("tree", "leaf")

	// No temporal pattern matches; the last token's only neighbor wins.
	assert.Equal(t, "leaf", l.PredictNext(sg, []string{"under", "the", "tree"}))
}

func TestPredictNextFallbackUsesRawToken(t *testing.T) {
	l := newTestLearner()
	sg := sigel.New(1, "athena")
	sg.Patterns.Semantic.Associate("tree", "leaf")

	// Network keys are lowercased cleaned words; a mixed-case query misses.
	assert.Equal(t, learning.UnknownToken, l.PredictNext(sg, []string{"under", "the", "Tree"}))
}

func TestPredictNextUnknown(t *testing.T) {
	l := newTestLearner()
	sg := sigel.New(1, "athena")

	assert.Equal(t, learning.UnknownToken, l.PredictNext(sg, []string{"never", "seen", "this"}))
	assert.Equal(t, learning.UnknownToken, l.PredictNext(sg, nil))
	assert.Equal(t, learning.UnknownToken, l.PredictNext(sg, []string{}))
}

func TestAccuracy(t *testing.T) {
	testCases := []struct {
		name      string
		predicted string
		actual    string
		want      float64
	}{
		{"exact", "hello", "hello", 1.0},
		{"exact case-insensitive", "Hello", "hello", 1.0},
		{"predicted substring of actual", "hel", "hello", 0.7},
		{"actual substring of predicted", "hello", "hel", 0.6},
		{"no shared characters", "cat", "dog", 0.0},
		{"anagram", "abc", "cba", 0.4},
		{"partial overlap", "cart", "dart", 0.3}, // a,r,t shared, maxLen 4
		{"both empty", "", "", 1.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, learning.Accuracy(tc.predicted, tc.actual), 1e-9)
		})
	}
}
