package consolidation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sigmind/sigmem-go/pkg/consolidation"
	"github.com/sigmind/sigmem-go/pkg/sigel"
)

func TestScoreAllFactorsAtMaximum(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	sg.Patterns.Add("z", 2.0)

	now := time.Now()
	m := &sigel.EpisodicMemory{
		Content:         "z",
		Context:         "test",
		EmotionalWeight: 1.0,
		Timestamp:       now,
		RelevanceScore:  1.0,
	}

	// emotional 0.3 + recency 0.2 + uniqueness 0.25 + pattern 0.15 +
	// resonance 0.1, each factor saturated.
	score := sc.Score(m, sg, now, 1.0)
	assert.InDelta(t, 1.0, score.TotalImportance, 1e-9)
	assert.Equal(t, consolidation.PriorityHigh, score.Priority)

	names := make([]string, 0, len(score.Factors))
	for _, f := range score.Factors {
		names = append(names, f.Name)
	}
	assert.Equal(t,
		[]string{"emotional", "recency", "uniqueness", "pattern_relevance", "resonance"},
		names)
}

func TestScoreRecencyDecaysWithAge(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	now := time.Now()

	fresh := &sigel.EpisodicMemory{Content: "z", Timestamp: now}
	day := &sigel.EpisodicMemory{Content: "z", Timestamp: now.Add(-24 * time.Hour)}

	sFresh := sc.Score(fresh, sg, now, 0.0)
	sDay := sc.Score(day, sg, now, 0.0)
	assert.Greater(t, sFresh.TotalImportance, sDay.TotalImportance)

	// 24h: 1/(1+24*0.01) = 1/1.24, scaled by the 0.2 weight.
	assert.InDelta(t, 0.2/1.24, factorValue(t, sDay, "recency"), 1e-9)
}

func TestScoreRecencyFloor(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	now := time.Now()

	ancient := &sigel.EpisodicMemory{Content: "z", Timestamp: now.Add(-10000 * time.Hour)}
	score := sc.Score(ancient, sg, now, 0.0)
	assert.InDelta(t, 0.1*0.2, factorValue(t, score, "recency"), 1e-9,
		"very old memories keep the recency floor")
}

func TestScoreFutureTimestampClampsToZeroAge(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	now := time.Now()

	future := &sigel.EpisodicMemory{Content: "z", Timestamp: now.Add(time.Hour)}
	score := sc.Score(future, sg, now, 0.0)
	assert.InDelta(t, 0.2, factorValue(t, score, "recency"), 1e-9)
}

func TestScoreUniquenessPrefersUnknownWords(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	for i := 0; i < 9; i++ {
		sg.Vocabulary.Learn("common", "a b")
	}
	now := time.Now()

	known := &sigel.EpisodicMemory{Content: "common", Timestamp: now}
	unknown := &sigel.EpisodicMemory{Content: "strange", Timestamp: now}

	sKnown := sc.Score(known, sg, now, 0.0)
	sUnknown := sc.Score(unknown, sg, now, 0.0)

	// Known word at frequency 9: rarity 1/10 over 6 chars. Unknown word:
	// 1.0 over 7 chars.
	assert.InDelta(t, (0.1/6.0)*0.25, factorValue(t, sKnown, "uniqueness"), 1e-9)
	assert.InDelta(t, (1.0/7.0)*0.25, factorValue(t, sUnknown, "uniqueness"), 1e-9)
}

func TestScoreEmotionalUsesAbsoluteWeight(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	now := time.Now()

	pos := &sigel.EpisodicMemory{Content: "z", EmotionalWeight: 0.8, Timestamp: now}
	neg := &sigel.EpisodicMemory{Content: "z", EmotionalWeight: -0.8, Timestamp: now}

	sPos := sc.Score(pos, sg, now, 0.0)
	sNeg := sc.Score(neg, sg, now, 0.0)
	assert.InDelta(t, sPos.TotalImportance, sNeg.TotalImportance, 1e-9)
	assert.InDelta(t, 0.8*0.3, factorValue(t, sPos, "emotional"), 1e-9)
}

func TestScorePriorityTiers(t *testing.T) {
	sc := consolidation.NewScorer()
	sg := sigel.New(1, "athena")
	now := time.Now()

	// Recency 0.2 + resonance alone spans all three tiers.
	low := sc.Score(&sigel.EpisodicMemory{Timestamp: now}, sg, now, 0.0)
	assert.Equal(t, consolidation.PriorityLow, low.Priority)

	medium := sc.Score(&sigel.EpisodicMemory{Timestamp: now}, sg, now, 2.5)
	assert.Equal(t, consolidation.PriorityMedium, medium.Priority)

	high := sc.Score(&sigel.EpisodicMemory{Timestamp: now, EmotionalWeight: 1.0}, sg, now, 2.5)
	assert.Equal(t, consolidation.PriorityHigh, high.Priority)
}

func factorValue(t *testing.T, score consolidation.MemoryScore, name string) float64 {
	t.Helper()
	for _, f := range score.Factors {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("factor %q not found", name)
	return 0
}
