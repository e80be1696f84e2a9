package consolidation

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/sigel"
)

// Defaults for the consolidation pass.
const (
	// DefaultDecayRate is the blanket multiplicative decay applied to all
	// pattern strengths at the end of each pass.
	DefaultDecayRate = 0.01

	// DefaultRetentionThreshold keeps only original records whose relevance
	// (overwritten with their computed importance) exceeds it.
	DefaultRetentionThreshold = 0.8

	// decayPruneThreshold removes patterns at or below this strength after
	// decay.
	decayPruneThreshold = 0.01

	// Reinforcement weights for n-gram windows of important records.
	bigramReinforcement  = 0.1
	trigramReinforcement = 0.05

	// highSignificanceImportance marks clusters worth an extra concept.
	highSignificanceImportance = 1.0
)

// Config carries the consolidator's tunables. The zero value is usable;
// zero fields fall back to the defaults above.
type Config struct {
	// DecayRate is the blanket pattern decay per pass.
	DecayRate float64

	// RetentionThreshold is the relevance cutoff for original records.
	RetentionThreshold float64
}

// Consolidator orchestrates a full consolidation pass: scoring, clustering,
// compression, retention, pattern reinforcement, decay, pruning, and
// semantic network maintenance.
//
// Scoring and per-cluster compression fork-join over an immutable snapshot;
// every mutation happens in the sequential merge. A pass runs to completion
// with no cancellation; callers bound corpus size and serialize access per
// entity.
type Consolidator struct {
	scorer    *Scorer
	clusterer *Clusterer
	cfg       Config
	logger    zerolog.Logger
}

// NewConsolidator creates a consolidator. A nil cfg uses all defaults.
func NewConsolidator(cfg *Config, logger zerolog.Logger) *Consolidator {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.DecayRate == 0 {
		c.DecayRate = DefaultDecayRate
	}
	if c.RetentionThreshold == 0 {
		c.RetentionThreshold = DefaultRetentionThreshold
	}
	return &Consolidator{
		scorer:    NewScorer(),
		clusterer: NewClusterer(),
		cfg:       c,
		logger:    logger,
	}
}

// Consolidate runs one full pass over the sigel and returns the report
// along with the consolidated memories produced (for optional post-pass
// summary refinement).
//
// now fixes the clock for the recency factor; resonance is the injected
// alignment scalar; nextID supplies IDs for synthetic records. An empty
// episodic store returns a zero report with no work performed.
func (c *Consolidator) Consolidate(sg *sigel.Sigel, now time.Time, resonance float64, nextID func() int64) (Report, []ConsolidatedMemory) {
	start := time.Now()
	report := Report{}

	if len(sg.Episodic) == 0 {
		return report, nil
	}

	// Phase 1-3 operate on an immutable snapshot of the store.
	originals := make([]sigel.EpisodicMemory, len(sg.Episodic))
	copy(originals, sg.Episodic)

	scores := c.scoreAll(sg, originals, now, resonance)
	report.MemoriesAnalyzed = len(scores)

	clusters := c.clusterer.Cluster(originals, scores)
	report.ClustersFormed = len(clusters)

	consolidated := c.compressClusters(clusters, originals, now, nextID)
	report.MemoriesConsolidated = len(consolidated)

	// Sequential merge: exclusive access to the sigel from here on.
	c.updateMemoryCore(sg, scores, consolidated)
	c.reinforcePatterns(sg, originals, scores)

	// Decay runs after reinforcement and therefore takes back part of what
	// was just added. Deliberate; see DESIGN.md before reordering.
	sg.Patterns.Decay(c.cfg.DecayRate)
	sg.Patterns.Prune(decayPruneThreshold)

	c.enhanceSemanticNetwork(sg)

	analyzed := report.MemoriesAnalyzed
	if analyzed < 1 {
		analyzed = 1
	}
	ratio := 1.0 - float64(len(sg.Episodic))/float64(analyzed)
	if ratio < 0 {
		ratio = 0
	}
	report.MemoryReductionRatio = ratio
	report.ProcessingTime = time.Since(start)

	c.logger.Info().
		Str("sigel", sg.Name).
		Int("memories_analyzed", report.MemoriesAnalyzed).
		Int("clusters_formed", report.ClustersFormed).
		Int("memories_consolidated", report.MemoriesConsolidated).
		Float64("reduction_ratio", report.MemoryReductionRatio).
		Dur("processing_time", report.ProcessingTime).
		Msg("memory consolidation completed")

	return report, consolidated
}

// scoreAll computes importance for every record in parallel. Read-only over
// the sigel.
func (c *Consolidator) scoreAll(sg *sigel.Sigel, memories []sigel.EpisodicMemory, now time.Time, resonance float64) []MemoryScore {
	scores := make([]MemoryScore, len(memories))
	parallelFor(len(memories), func(i int) {
		scores[i] = c.scorer.Score(&memories[i], sg, now, resonance)
	})
	return scores
}

// compressClusters builds one ConsolidatedMemory per cluster, in parallel.
func (c *Consolidator) compressClusters(clusters []MemoryCluster, originals []sigel.EpisodicMemory, now time.Time, nextID func() int64) []ConsolidatedMemory {
	out := make([]ConsolidatedMemory, len(clusters))
	parallelFor(len(clusters), func(i int) {
		out[i] = c.compressCluster(&clusters[i], originals, now, nextID)
	})
	return out
}

func (c *Consolidator) compressCluster(cluster *MemoryCluster, originals []sigel.EpisodicMemory, now time.Time, nextID func() int64) ConsolidatedMemory {
	summary := fmt.Sprintf("Consolidated memory cluster about %s with %d related memories",
		cluster.Topic, len(cluster.MemberIndices))

	keyPatterns := []string{
		"topic:" + cluster.Topic,
		"emotional_pattern:" + string(cluster.Emotional),
		"cluster_pattern",
	}

	concepts := map[string]float64{
		cluster.Topic: 1.0,
	}
	concepts[conceptForProfile(cluster.Emotional)] = 0.8
	if cluster.Importance > highSignificanceImportance {
		concepts["high_significance"] = 0.9
	}

	excerpts := make([]string, 0, len(cluster.MemberIndices))
	for _, idx := range cluster.MemberIndices {
		if idx >= 0 && idx < len(originals) {
			excerpts = append(excerpts, originals[idx].Content)
		}
	}

	return ConsolidatedMemory{
		ID:                  nextID(),
		Summary:             summary,
		KeyPatterns:         keyPatterns,
		EssentialConcepts:   concepts,
		Importance:          cluster.Importance,
		Emotional:           cluster.Emotional,
		OriginalMemberCount: len(cluster.MemberIndices),
		CreatedAt:           now,
		MemberExcerpts:      excerpts,
	}
}

func conceptForProfile(p EmotionalProfile) string {
	switch p {
	case ProfilePositive:
		return "positive_experience"
	case ProfileNegative:
		return "challenging_experience"
	case ProfileMixed:
		return "complex_experience"
	default:
		return "neutral_experience"
	}
}

// updateMemoryCore overwrites each record's relevance with its computed
// importance, retains only records above the retention threshold, and
// appends one synthetic record per consolidated memory.
func (c *Consolidator) updateMemoryCore(sg *sigel.Sigel, scores []MemoryScore, consolidated []ConsolidatedMemory) {
	retained := sg.Episodic[:0]
	for i := range sg.Episodic {
		sg.Episodic[i].RelevanceScore = scores[i].TotalImportance
		if sg.Episodic[i].RelevanceScore > c.cfg.RetentionThreshold {
			retained = append(retained, sg.Episodic[i])
		}
	}
	sg.Episodic = retained

	for i := range consolidated {
		cm := &consolidated[i]
		sg.Episodic = append(sg.Episodic, sigel.EpisodicMemory{
			ID:              cm.ID,
			Timestamp:       cm.CreatedAt,
			Content:         cm.Summary,
			Context:         "consolidated_memory",
			EmotionalWeight: cm.Emotional.EmotionalWeight(),
			RelevanceScore:  cm.Importance,
		})
	}
}

// reinforcePatterns adds 2- and 3-gram windows of every original record to
// the pattern index, weighted by the record's importance.
//
// Reinforcement reads the pre-consolidation snapshot, not the compacted
// store, so every analyzed record contributes exactly once.
func (c *Consolidator) reinforcePatterns(sg *sigel.Sigel, originals []sigel.EpisodicMemory, scores []MemoryScore) {
	reinforcement := make(map[string]float64)

	for i := range originals {
		words := strings.Fields(originals[i].Content)
		importance := scores[i].TotalImportance

		for j := 0; j+2 <= len(words); j++ {
			reinforcement[strings.Join(words[j:j+2], " ")] += importance * bigramReinforcement
		}
		for j := 0; j+3 <= len(words); j++ {
			reinforcement[strings.Join(words[j:j+3], " ")] += importance * trigramReinforcement
		}
	}

	for p, delta := range reinforcement {
		sg.Patterns.Reinforce(p, delta)
	}
}

// enhanceSemanticNetwork adds bidirectional edges between every ordered word
// pair of high-relevance and consolidated records, then compacts all
// adjacency lists (dedup, sort, cap).
func (c *Consolidator) enhanceSemanticNetwork(sg *sigel.Sigel) {
	for i := range sg.Episodic {
		m := &sg.Episodic[i]
		if m.RelevanceScore <= c.cfg.RetentionThreshold && m.Context != "consolidated_memory" {
			continue
		}

		words := strings.Fields(m.Content)
		for a := 0; a < len(words); a++ {
			for b := a + 1; b < len(words); b++ {
				sg.Patterns.Semantic.Associate(strings.ToLower(words[a]), strings.ToLower(words[b]))
			}
		}
	}

	sg.Patterns.Semantic.Compact()
}
