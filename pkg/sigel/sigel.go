// Package sigel defines the owning aggregate for the associative memory
// subsystem: vocabulary, pattern index, episodic record log, and learning
// state. The whole structure serializes to a single JSON document.
package sigel

import (
	"time"

	"github.com/sigmind/sigmem-go/pkg/pattern"
	"github.com/sigmind/sigmem-go/pkg/vocab"
)

// Version is stamped into newly created sigels.
const Version = "0.1.0"

// EpisodicMemory is one timestamped record in the append-only episodic log.
type EpisodicMemory struct {
	// ID is the unique identifier of the record.
	ID int64 `json:"id"`

	// Timestamp is when the record was created.
	Timestamp time.Time `json:"timestamp"`

	// Content is the raw text of the record.
	Content string `json:"content"`

	// Context tags the record's origin (source file, "user_interaction",
	// or "consolidated_memory" for synthetic summaries).
	Context string `json:"context"`

	// EmotionalWeight is the lexicon-derived affect of the record, in [-1, 1].
	EmotionalWeight float64 `json:"emotional_weight"`

	// RelevanceScore starts at 1.0 and is only ever read or overwritten by
	// consolidation; it is never decayed independently.
	RelevanceScore float64 `json:"relevance_score"`
}

// LearningState tracks the progress of the learning loop.
type LearningState struct {
	// TrainingIterations counts self-evaluation draws plus evolutions.
	TrainingIterations uint64 `json:"training_iterations"`

	// CorpusSize is the total number of bytes ingested so far.
	CorpusSize int `json:"text_corpus_size"`

	// LearningRate scales pattern reinforcement during self-evaluation.
	LearningRate float64 `json:"learning_rate"`
}

// Sigel is the owning entity: the aggregate holding vocabulary, pattern
// index, episodic memory, and derived state. A Sigel is not safe for
// concurrent use; callers serialize access per entity.
type Sigel struct {
	// ID is the unique identifier of the entity.
	ID int64 `json:"id"`

	// Name is the entity's stable, human-readable name. Snapshot stores key
	// persisted sigels by name.
	Name string `json:"name"`

	// Vocabulary is the word knowledge store.
	Vocabulary *vocab.Store `json:"vocabulary"`

	// Patterns is the pattern index (linguistic, semantic, temporal).
	Patterns *pattern.Index `json:"patterns"`

	// Episodic is the episodic record log, in insertion order. Insertion
	// order is the canonical iteration order for clustering.
	Episodic []EpisodicMemory `json:"episodic_memories"`

	// Learning tracks the learning loop's progress.
	Learning LearningState `json:"learning_state"`

	// AwarenessDepth grows slowly with interaction, capped at 1.0.
	AwarenessDepth float64 `json:"awareness_depth"`

	// ContextualAlignment is the ambient alignment scalar consumed by the
	// importance scorer's resonance factor. Opaque to this subsystem; the
	// caller may overwrite it between passes.
	ContextualAlignment float64 `json:"contextual_alignment"`

	// CreatedAt is when the entity was created.
	CreatedAt time.Time `json:"created_at"`

	// LastEvolved is when the entity last completed a learning pass.
	LastEvolved time.Time `json:"last_evolved"`

	// Version is the structure version stamp.
	Version string `json:"version"`
}

// New creates an empty sigel with default learning parameters.
func New(id int64, name string) *Sigel {
	now := time.Now()
	return &Sigel{
		ID:                  id,
		Name:                name,
		Vocabulary:          vocab.NewStore(),
		Patterns:            pattern.NewIndex(),
		Learning:            LearningState{LearningRate: 0.01},
		AwarenessDepth:      0.5,
		ContextualAlignment: 0.7,
		CreatedAt:           now,
		LastEvolved:         now,
		Version:             Version,
	}
}

// AddMemory appends an episodic record with relevance seeded to 1.0.
func (s *Sigel) AddMemory(id int64, content, context string, emotionalWeight float64) {
	s.Episodic = append(s.Episodic, EpisodicMemory{
		ID:              id,
		Timestamp:       time.Now(),
		Content:         content,
		Context:         context,
		EmotionalWeight: emotionalWeight,
		RelevanceScore:  1.0,
	})
}

// Evolve stamps the end of a learning pass and nudges awareness.
func (s *Sigel) Evolve() {
	s.LastEvolved = time.Now()
	s.Learning.TrainingIterations++
	s.AwarenessDepth *= 1.0005
	if s.AwarenessDepth > 1.0 {
		s.AwarenessDepth = 1.0
	}
}
