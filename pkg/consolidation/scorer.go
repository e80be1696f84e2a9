package consolidation

import (
	"strings"
	"time"

	"github.com/sigmind/sigmem-go/pkg/sigel"
)

// Factor weights. Each factor is computed in its own unit range and scaled
// by its weight before summing; the weights are intended contributions, not
// a normalization.
const (
	emotionalWeight  = 0.3
	recencyWeight    = 0.2
	uniquenessWeight = 0.25
	patternWeight    = 0.15
	resonanceWeight  = 0.1
)

// Priority thresholds on total importance.
const (
	highPriorityThreshold   = 0.7
	mediumPriorityThreshold = 0.4
)

// recencyFloor keeps old memories from starving entirely.
const recencyFloor = 0.1

// Scorer computes the multi-factor importance of episodic records.
//
// Score is a pure function of its inputs: the clock and the resonance
// scalar are injected rather than read from ambient state, so tests can fix
// both.
type Scorer struct{}

// NewScorer creates an importance scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the importance of one record against the sigel's current
// vocabulary and pattern index.
//
//   - emotional (0.3): absolute emotional weight
//   - recency (0.2): 1/(1+age_hours*0.01), floored at 0.1
//   - uniqueness (0.25): mean word rarity over content length
//   - pattern relevance (0.15): strength of matching patterns over index size
//   - resonance (0.1): the injected alignment scalar
func (sc *Scorer) Score(m *sigel.EpisodicMemory, sg *sigel.Sigel, now time.Time, resonance float64) MemoryScore {
	importance := 0.0
	factors := make([]Factor, 0, 5)
	add := func(name string, v float64) {
		importance += v
		factors = append(factors, Factor{Name: name, Value: v})
	}

	add("emotional", abs(m.EmotionalWeight)*emotionalWeight)

	ageHours := now.Sub(m.Timestamp).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	recency := 1.0 / (1.0 + ageHours*0.01)
	if recency < recencyFloor {
		recency = recencyFloor
	}
	add("recency", recency*recencyWeight)

	add("uniqueness", sc.contentUniqueness(m.Content, sg)*uniquenessWeight)
	add("pattern_relevance", sc.patternRelevance(m.Content, sg)*patternWeight)
	add("resonance", resonance*resonanceWeight)

	return MemoryScore{
		TotalImportance: importance,
		Factors:         factors,
		Priority:        priorityFor(importance),
	}
}

// contentUniqueness sums word rarity (1/(freq+1) for known words, 1.0 for
// unknown) and normalizes by content length, capped at 1.0.
func (sc *Scorer) contentUniqueness(content string, sg *sigel.Sigel) float64 {
	score := 0.0
	for _, word := range strings.Fields(content) {
		if freq, ok := sg.Vocabulary.Frequency(word); ok {
			score += 1.0 / (freq + 1.0)
		} else {
			score += 1.0
		}
	}

	length := len(content)
	if length < 1 {
		length = 1
	}
	u := score / float64(length)
	if u > 1.0 {
		u = 1.0
	}
	return u
}

// patternRelevance sums the strength of every linguistic pattern whose text
// occurs in the content, normalized by total pattern count, capped at 1.0.
func (sc *Scorer) patternRelevance(content string, sg *sigel.Sigel) float64 {
	relevance := 0.0
	sg.Patterns.Each(func(p string, strength float64) {
		if strings.Contains(content, p) {
			relevance += strength
		}
	})

	count := sg.Patterns.Len()
	if count < 1 {
		count = 1
	}
	r := relevance / float64(count)
	if r > 1.0 {
		r = 1.0
	}
	return r
}

func priorityFor(importance float64) Priority {
	switch {
	case importance > highPriorityThreshold:
		return PriorityHigh
	case importance > mediumPriorityThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
