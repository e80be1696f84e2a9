package sigel

import (
	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/numeric"
)

// Sanitize replaces every non-finite floating point field in the sigel with
// its documented default, so the persisted JSON document is always strict
// and re-loadable (no nulls from invalid floats).
//
// Corrections are logged at warn level and counted; invalid values are a
// policy matter, never an error. Returns the number of corrected fields.
func (s *Sigel) Sanitize(logger zerolog.Logger) int {
	corrected := 0
	fix := func(v *float64, def float64, field string) {
		if numeric.IsFinite(*v) {
			return
		}
		logger.Warn().
			Str("sigel", s.Name).
			Str("field", field).
			Float64("default", def).
			Msg("replaced non-finite value")
		*v = def
		corrected++
	}

	fix(&s.AwarenessDepth, numeric.DefaultAwareness, "awareness_depth")
	fix(&s.ContextualAlignment, numeric.DefaultAlignment, "contextual_alignment")
	fix(&s.Learning.LearningRate, 0.01, "learning_rate")

	if s.Vocabulary != nil {
		for _, wk := range s.Vocabulary.Words {
			fix(&wk.Frequency, numeric.DefaultFrequency, "vocabulary.frequency")
			fix(&wk.EmotionalValence, numeric.DefaultValence, "vocabulary.emotional_valence")
			fix(&wk.SemanticWeight, numeric.DefaultWeight, "vocabulary.semantic_weight")
		}
	}

	if s.Patterns != nil {
		for p, strength := range s.Patterns.Linguistic {
			if !numeric.IsFinite(strength) {
				logger.Warn().
					Str("sigel", s.Name).
					Str("field", "patterns.linguistic").
					Str("pattern", p).
					Float64("default", numeric.DefaultStrength).
					Msg("replaced non-finite value")
				s.Patterns.Linguistic[p] = numeric.DefaultStrength
				corrected++
			}
		}
		for i := range s.Patterns.Temporal {
			tp := &s.Patterns.Temporal[i]
			fix(&tp.Frequency, numeric.DefaultStrength, "patterns.temporal.frequency")
			fix(&tp.ContextRelevance, numeric.DefaultContextRelevance, "patterns.temporal.context_relevance")
		}
	}

	for i := range s.Episodic {
		m := &s.Episodic[i]
		fix(&m.EmotionalWeight, numeric.DefaultValence, "episodic.emotional_weight")
		fix(&m.RelevanceScore, numeric.DefaultRelevance, "episodic.relevance_score")
	}

	return corrected
}
