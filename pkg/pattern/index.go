// Package pattern provides the pattern index: weighted linguistic n-grams,
// a semantic adjacency network, and temporal sequences used for naive
// next-token prediction.
//
// The maps are exported for JSON persistence, but all mutation goes through
// the narrow method API (Add, Reinforce, Decay, Prune, Associate, Append)
// so the decay/reinforcement dynamics stay in one place.
package pattern

// MaxStrength caps a linguistic pattern's strength under reinforcement.
const MaxStrength = 2.0

// ReinforceSeedThreshold is the minimum reinforcement required before an
// unseen pattern is admitted into the index during consolidation.
const ReinforceSeedThreshold = 0.1

// Index holds all learned pattern state for one owning entity.
type Index struct {
	// Linguistic maps an n-gram ("w1 w2 ...") to its reinforcement strength.
	Linguistic map[string]float64 `json:"linguistic"`

	// Semantic maps a word to its related words.
	Semantic Network `json:"semantic"`

	// Temporal is the append-only list of 4-token predictive sequences.
	Temporal []TemporalPattern `json:"temporal"`
}

// NewIndex creates an empty pattern index.
func NewIndex() *Index {
	return &Index{
		Linguistic: make(map[string]float64),
		Semantic:   make(Network),
	}
}

// Add accumulates delta onto the pattern's strength, creating the entry if
// needed. Used on the ingestion path, where every observed n-gram counts.
func (ix *Index) Add(p string, delta float64) {
	ix.Linguistic[p] += delta
}

// Reinforce accumulates delta onto an existing pattern, capped at
// MaxStrength. A pattern not yet in the index is admitted only when delta
// exceeds ReinforceSeedThreshold. Used on the consolidation path.
func (ix *Index) Reinforce(p string, delta float64) {
	if s, ok := ix.Linguistic[p]; ok {
		s += delta
		if s > MaxStrength {
			s = MaxStrength
		}
		ix.Linguistic[p] = s
		return
	}
	if delta > ReinforceSeedThreshold {
		ix.Linguistic[p] = delta
	}
}

// Decay multiplies every pattern strength by (1 - rate).
//
// Strengths never go negative: for rate in [0, 1] the product floors at 0.
func (ix *Index) Decay(rate float64) {
	for p, s := range ix.Linguistic {
		ix.Linguistic[p] = s * (1.0 - rate)
	}
}

// Prune removes every pattern whose strength is at or below threshold.
func (ix *Index) Prune(threshold float64) {
	for p, s := range ix.Linguistic {
		if s <= threshold {
			delete(ix.Linguistic, p)
		}
	}
}

// Strength returns the current strength of p (0 if absent).
func (ix *Index) Strength(p string) float64 {
	return ix.Linguistic[p]
}

// Len returns the number of linguistic patterns in the index.
func (ix *Index) Len() int {
	return len(ix.Linguistic)
}

// Each calls fn for every linguistic pattern. Read-only: fn must not mutate
// the index.
func (ix *Index) Each(fn func(p string, strength float64)) {
	for p, s := range ix.Linguistic {
		fn(p, s)
	}
}
