package consolidation

import (
	"sort"
	"strings"

	"github.com/sigmind/sigmem-go/pkg/sigel"
)

// similarityThreshold is the minimum pairwise similarity for two records to
// share a cluster.
const similarityThreshold = 0.7

// topicWordCount is the maximum number of words in a topic label.
const topicWordCount = 3

// minTopicWordLen excludes short words from topic labels.
const minTopicWordLen = 4

// stopWords are function words excluded from topic labels.
var stopWords = map[string]bool{
	"the": true, "and": true, "that": true, "have": true, "for": true,
	"not": true, "with": true, "you": true, "this": true, "but": true,
	"his": true, "from": true, "they": true, "she": true, "her": true,
	"been": true, "than": true, "its": true, "who": true, "did": true,
}

// Clusterer groups episodic records by pairwise similarity using a
// single-pass greedy scan.
//
// The grouping is O(n²) and order-dependent by design: records are iterated
// in store insertion order, and the first unprocessed record always seeds
// its cluster. That ordering is the canonical tie-break, kept deterministic
// so repeated passes over identical stores reproduce identical clusters.
type Clusterer struct{}

// NewClusterer creates a similarity clusterer.
func NewClusterer() *Clusterer {
	return &Clusterer{}
}

// Similarity computes the pairwise similarity of two records:
//
//	0.4*Jaccard(words) + 0.2*[same context] + 0.2*(1-|Δweight|/2) + 0.2*time
//
// where the temporal factor is 1/(1+Δhours*0.1), floored at 0.1.
func (c *Clusterer) Similarity(a, b *sigel.EpisodicMemory) float64 {
	content := jaccard(strings.Fields(a.Content), strings.Fields(b.Content))

	context := 0.0
	if a.Context == b.Context {
		context = 1.0
	}

	emotionalDiff := abs(a.EmotionalWeight-b.EmotionalWeight) / 2.0
	if emotionalDiff > 1.0 {
		emotionalDiff = 1.0
	}
	emotional := 1.0 - emotionalDiff

	deltaHours := abs(a.Timestamp.Sub(b.Timestamp).Hours())
	temporal := 1.0 / (1.0 + deltaHours*0.1)
	if temporal < 0.1 {
		temporal = 0.1
	}

	return content*0.4 + context*0.2 + emotional*0.2 + temporal*0.2
}

// Cluster groups memories using their scores.
//
// Each unprocessed record seeds a cluster; all later unprocessed records
// with similarity above the threshold join it. Clusters are returned sorted
// by aggregated importance, descending (stable on ties).
func (c *Clusterer) Cluster(memories []sigel.EpisodicMemory, scores []MemoryScore) []MemoryCluster {
	if len(memories) != len(scores) {
		return nil
	}

	clusters := make([]MemoryCluster, 0, len(memories))
	processed := make([]bool, len(memories))

	for idx := range memories {
		if processed[idx] {
			continue
		}
		seed := &memories[idx]

		cluster := MemoryCluster{
			CoreIndex:     idx,
			MemberIndices: []int{idx},
			Topic:         c.Topic(seed.Content),
			Importance:    scores[idx].TotalImportance,
			Emotional:     ProfileFromWeight(seed.EmotionalWeight),
		}

		for other := idx + 1; other < len(memories); other++ {
			if processed[other] {
				continue
			}
			if c.Similarity(seed, &memories[other]) > similarityThreshold {
				cluster.MemberIndices = append(cluster.MemberIndices, other)
				cluster.Importance += scores[other].TotalImportance
				processed[other] = true
			}
		}

		processed[idx] = true
		clusters = append(clusters, cluster)
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Importance > clusters[j].Importance
	})
	return clusters
}

// Topic derives a cluster label: up to three of the longest non-common
// words joined by '_', or "general" when none qualify. Length ties keep
// content order.
func (c *Clusterer) Topic(content string) string {
	var meaningful []string
	for _, w := range strings.Fields(content) {
		if len(w) >= minTopicWordLen && !stopWords[strings.ToLower(w)] {
			meaningful = append(meaningful, w)
		}
	}
	if len(meaningful) == 0 {
		return "general"
	}

	sort.SliceStable(meaningful, func(i, j int) bool {
		return len(meaningful[i]) > len(meaningful[j])
	})
	if len(meaningful) > topicWordCount {
		meaningful = meaningful[:topicWordCount]
	}
	return strings.Join(meaningful, "_")
}

// jaccard computes set overlap over union for two word lists.
func jaccard(a, b []string) float64 {
	setA := make(map[string]bool, len(a))
	for _, w := range a {
		setA[w] = true
	}
	setB := make(map[string]bool, len(b))
	for _, w := range b {
		setB[w] = true
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
