// Package vocab provides the vocabulary store: per-word frequency, observed
// contexts, emotional valence, and semantic weight.
package vocab

// MaxContexts bounds the number of distinct contexts remembered per word.
// The oldest contexts are kept; later ones are ignored once the bound is hit.
const MaxContexts = 64

// WordKnowledge holds everything learned about a single word.
//
// Frequency is monotonic non-decreasing under reinforcement. Valence stays
// in [-1, 1] and SemanticWeight stays >= 0; both are re-checked by the
// sanitation pass before persistence.
type WordKnowledge struct {
	// Frequency counts occurrences, seeded to 1.0 on first sight.
	Frequency float64 `json:"frequency"`

	// Contexts is a bounded, deduplicated list of short "left right"
	// neighbor strings the word was seen between.
	Contexts []string `json:"contexts,omitempty"`

	// EmotionalValence is the learned affect of the word, in [-1, 1].
	EmotionalValence float64 `json:"emotional_valence"`

	// SemanticWeight scales the word's contribution to association scores.
	SemanticWeight float64 `json:"semantic_weight"`
}

// Store maps words to their accumulated knowledge.
//
// Mutate through Learn; direct map access is reserved for serialization.
type Store struct {
	Words map[string]*WordKnowledge `json:"words"`
}

// NewStore creates an empty vocabulary store.
func NewStore() *Store {
	return &Store{Words: make(map[string]*WordKnowledge)}
}

// Learn records one occurrence of word in the given context.
//
// The first occurrence seeds frequency to 1.0; every re-occurrence adds 1.0.
// The context is appended if it is new and the per-word bound allows it.
func (s *Store) Learn(word, context string) {
	wk, ok := s.Words[word]
	if !ok {
		wk = &WordKnowledge{Frequency: 1.0, SemanticWeight: 1.0}
		s.Words[word] = wk
	} else {
		wk.Frequency += 1.0
	}

	if len(wk.Contexts) >= MaxContexts {
		return
	}
	for _, c := range wk.Contexts {
		if c == context {
			return
		}
	}
	wk.Contexts = append(wk.Contexts, context)
}

// Frequency returns the recorded frequency of word and whether it is known.
func (s *Store) Frequency(word string) (float64, bool) {
	wk, ok := s.Words[word]
	if !ok {
		return 0, false
	}
	return wk.Frequency, true
}

// Len returns the number of distinct known words.
func (s *Store) Len() int {
	return len(s.Words)
}
