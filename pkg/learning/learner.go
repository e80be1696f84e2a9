// Package learning provides the pattern learner: it ingests free text into
// the vocabulary, semantic network, episodic log, and pattern index, and
// runs a self-evaluating prediction loop that reinforces what it got wrong.
package learning

import (
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sigmind/sigmem-go/pkg/sigel"
)

// Sentence length bounds for episodic capture. Sentences outside the bounds
// are still mined for patterns but not stored as records.
const (
	minEpisodicTokens = 5
	maxEpisodicTokens = 50
)

// Self-evaluation draw bounds: one draw per 100 corpus tokens, clamped.
const (
	minSampleSize = 1000
	maxSampleSize = 10000
)

// minPatternSentenceLen is the minimum trimmed sentence length considered
// during bulk n-gram extraction.
const minPatternSentenceLen = 10

// weakPatternThreshold prunes patterns left at or below this strength after
// a learning pass.
const weakPatternThreshold = 0.1

// Config carries the learner's tunables.
type Config struct {
	// NextID supplies IDs for new episodic records. Defaults to a
	// process-local sequential counter.
	NextID func() int64
}

// Learner ingests text into a sigel and evaluates its own predictions.
//
// The RNG is explicit and seedable so runs are reproducible; it is guarded
// by a mutex because prediction fallback may be called concurrently under a
// read lock.
type Learner struct {
	nextID func() int64

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewLearner creates a learner with the given RNG source.
//
// Pass rand.New(rand.NewSource(seed)) for deterministic behavior in tests.
// A nil cfg or cfg.NextID falls back to a sequential ID counter.
func NewLearner(cfg *Config, rng *rand.Rand) *Learner {
	var next func() int64
	if cfg != nil && cfg.NextID != nil {
		next = cfg.NextID
	} else {
		var ctr int64
		next = func() int64 { return atomic.AddInt64(&ctr, 1) }
	}
	return &Learner{nextID: next, rng: rng}
}

// Ingest absorbs text into the sigel: vocabulary and semantic updates,
// episodic capture, bulk n-gram extraction, and the self-evaluation loop.
//
// Not idempotent: repeated calls keep adding memories and reinforcement.
// Degenerate input (fewer than 4 tokens) skips the self-evaluation loop and
// succeeds with whatever partial work applied.
func (l *Learner) Ingest(sg *sigel.Sigel, text, sourceTag string) {
	l.processText(sg, text, sourceTag)
	sg.Learning.CorpusSize += len(text)
	l.selfEvaluate(sg, text)
	l.extractPatterns(sg, text)
	sg.Evolve()
}

// processText walks sentences and sliding 3-token windows, recording the
// middle word's context, bidirectional semantic edges, and episodic records
// for sentences of meaningful length.
func (l *Learner) processText(sg *sigel.Sigel, text, sourceTag string) {
	for _, sentence := range SplitSentences(text) {
		words := Tokenize(sentence)

		for i := 0; i+2 < len(words); i++ {
			a, b, c := words[i], words[i+1], words[i+2]
			sg.Vocabulary.Learn(strings.ToLower(b), a+" "+c)
			l.associate(sg, a, b)
			l.associate(sg, b, c)
		}

		if len(words) > minEpisodicTokens && len(words) < maxEpisodicTokens {
			sg.AddMemory(l.nextID(), strings.TrimSpace(sentence), sourceTag, EmotionalWeight(sentence))
		}
	}
}

// associate records a bidirectional semantic edge between the cleaned forms
// of w1 and w2. Empty cleaned tokens produce no edge.
func (l *Learner) associate(sg *sigel.Sigel, w1, w2 string) {
	c1, c2 := CleanWord(w1), CleanWord(w2)
	if c1 == "" || c2 == "" {
		return
	}
	sg.Patterns.Semantic.Associate(c1, c2)
}

// extractPatterns mines the whole corpus for 2-, 3-, and 4-gram patterns.
// Shorter n-grams are weighted higher (strength += 1/n); patterns that end
// the pass at or below the weak threshold are dropped.
func (l *Learner) extractPatterns(sg *sigel.Sigel, text string) {
	for _, sentence := range SplitSentences(text) {
		if len(strings.TrimSpace(sentence)) <= minPatternSentenceLen {
			continue
		}
		words := Tokenize(sentence)
		for n := 2; n <= 4; n++ {
			for i := 0; i+n <= len(words); i++ {
				sg.Patterns.Add(strings.Join(words[i:i+n], " "), 1.0/float64(n))
			}
		}
	}
	sg.Patterns.Prune(weakPatternThreshold)
}

// selfEvaluate draws random 3-token contexts from the corpus, predicts the
// fourth token, and reinforces the drawn pattern; wrong predictions
// (accuracy < 0.5) are reinforced at double the learning rate.
func (l *Learner) selfEvaluate(sg *sigel.Sigel, text string) {
	words := Tokenize(text)
	if len(words) < 4 {
		return
	}

	sampleSize := len(words) / 100
	if sampleSize < minSampleSize {
		sampleSize = minSampleSize
	}
	if sampleSize > maxSampleSize {
		sampleSize = maxSampleSize
	}

	rate := sg.Learning.LearningRate
	span := len(words) - 3

	for i := 0; i < sampleSize; i++ {
		start := l.intn(span)
		context := words[start : start+3]
		target := words[start+3]

		predicted := l.PredictNext(sg, context)
		accuracy := Accuracy(predicted, target)

		delta := rate
		if accuracy < 0.5 {
			delta = rate * 2.0
		}
		l.strengthen(sg, context, target, delta)

		sg.Learning.TrainingIterations++
	}
}

// strengthen appends a temporal pattern for the context+target sequence and
// adds the same delta to the matching 3-token linguistic pattern.
func (l *Learner) strengthen(sg *sigel.Sigel, context []string, target string, delta float64) {
	seq := make([]string, 0, len(context)+1)
	seq = append(seq, context...)
	seq = append(seq, target)
	sg.Patterns.AppendTemporal(seq, delta)
	sg.Patterns.Add(strings.Join(context, " "), delta)
}

// intn draws from the learner's guarded RNG.
func (l *Learner) intn(n int) int {
	if n <= 1 {
		return 0
	}
	l.rngMu.Lock()
	defer l.rngMu.Unlock()
	return l.rng.Intn(n)
}
