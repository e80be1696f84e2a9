package pattern

import "strings"

// TemporalPattern is a stored token sequence used as a crude predictor:
// the first three tokens are the context, the fourth is the prediction.
//
// The list is append-only and never deduplicated; repeated sequences simply
// add predictive weight through repetition.
type TemporalPattern struct {
	Sequence         []string `json:"sequence"`
	Frequency        float64  `json:"frequency"`
	ContextRelevance float64  `json:"context_relevance"`
}

// AppendTemporal records a new temporal pattern with the given reinforcement
// strength and full context relevance.
func (ix *Index) AppendTemporal(sequence []string, strength float64) {
	seq := make([]string, len(sequence))
	copy(seq, sequence)
	ix.Temporal = append(ix.Temporal, TemporalPattern{
		Sequence:         seq,
		Frequency:        strength,
		ContextRelevance: 1.0,
	})
}

// MatchTemporal scans the temporal patterns in insertion order and returns
// the predicted fourth token of the first pattern whose three-token context
// contains contextKey (case-insensitive). First-inserted wins; the match is
// order-dependent by design, not most-frequent.
func (ix *Index) MatchTemporal(contextKey string) (string, bool) {
	key := strings.ToLower(contextKey)
	for _, tp := range ix.Temporal {
		if len(tp.Sequence) < 4 {
			continue
		}
		patternCtx := strings.ToLower(strings.Join(tp.Sequence[:3], " "))
		if strings.Contains(patternCtx, key) {
			return tp.Sequence[3], true
		}
	}
	return "", false
}
