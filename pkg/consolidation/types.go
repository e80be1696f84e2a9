// Package consolidation provides the memory consolidation pipeline:
// multi-factor importance scoring, greedy similarity clustering, cluster
// compression, pattern reinforcement with decay and pruning, and semantic
// network maintenance.
package consolidation

import (
	"time"
)

// Priority buckets a memory's consolidation urgency by total importance.
type Priority string

const (
	// PriorityHigh marks importance above 0.7.
	PriorityHigh Priority = "high"

	// PriorityMedium marks importance above 0.4.
	PriorityMedium Priority = "medium"

	// PriorityLow marks everything else.
	PriorityLow Priority = "low"
)

// Factor is one named contribution to a memory's importance.
type Factor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MemoryScore is the derived importance of one episodic record. It is
// computed per pass and never stored.
type MemoryScore struct {
	// TotalImportance is the weighted sum of all factors.
	TotalImportance float64 `json:"total_importance"`

	// Factors is the per-factor breakdown, in computation order.
	Factors []Factor `json:"factors"`

	// Priority is the tier derived from TotalImportance.
	Priority Priority `json:"priority"`
}

// EmotionalProfile is a coarse affect bucket derived from emotional weight.
type EmotionalProfile string

const (
	ProfilePositive EmotionalProfile = "positive"
	ProfileNegative EmotionalProfile = "negative"
	ProfileNeutral  EmotionalProfile = "neutral"
	ProfileMixed    EmotionalProfile = "mixed"
)

// ProfileFromWeight buckets an emotional weight: above 0.3 is positive,
// below -0.3 is negative, within [-0.1, 0.1] is neutral, the rest is mixed.
func ProfileFromWeight(w float64) EmotionalProfile {
	switch {
	case w > 0.3:
		return ProfilePositive
	case w < -0.3:
		return ProfileNegative
	case w <= 0.1 && w >= -0.1:
		return ProfileNeutral
	default:
		return ProfileMixed
	}
}

// EmotionalWeight maps a profile back to the synthetic record's weight.
func (p EmotionalProfile) EmotionalWeight() float64 {
	switch p {
	case ProfilePositive:
		return 0.7
	case ProfileNegative:
		return -0.7
	default:
		return 0.0
	}
}

// MemoryCluster groups similar episodic records for compression. Transient,
// produced per consolidation pass.
type MemoryCluster struct {
	// CoreIndex is the index of the seed record in store order.
	CoreIndex int `json:"core_index"`

	// MemberIndices lists all member record indices, seed first.
	MemberIndices []int `json:"member_indices"`

	// Topic is the derived label joining the longest non-common words.
	Topic string `json:"topic"`

	// Importance is the sum of the members' total importance.
	Importance float64 `json:"importance"`

	// Emotional is the profile of the seed record.
	Emotional EmotionalProfile `json:"emotional_profile"`
}

// ConsolidatedMemory is the compressed representation of one cluster. It is
// re-inserted into the episodic store as a synthetic record with context
// "consolidated_memory".
type ConsolidatedMemory struct {
	ID                  int64              `json:"id"`
	Summary             string             `json:"summary"`
	KeyPatterns         []string           `json:"key_patterns"`
	EssentialConcepts   map[string]float64 `json:"essential_concepts"`
	Importance          float64            `json:"importance"`
	Emotional           EmotionalProfile   `json:"emotional_profile"`
	OriginalMemberCount int                `json:"original_member_count"`
	CreatedAt           time.Time          `json:"created_at"`
	AccessFrequency     uint64             `json:"access_frequency"`

	// MemberExcerpts holds the member record contents for optional
	// post-pass summary refinement. Transient; not persisted.
	MemberExcerpts []string `json:"-"`
}

// Report summarizes one consolidation pass.
type Report struct {
	MemoriesAnalyzed     int           `json:"memories_analyzed"`
	ClustersFormed       int           `json:"clusters_formed"`
	MemoriesConsolidated int           `json:"memories_consolidated"`
	ProcessingTime       time.Duration `json:"processing_time"`
	MemoryReductionRatio float64       `json:"memory_reduction_ratio"`
}

// Schedule is a hint for the out-of-scope background scheduler.
type Schedule struct {
	// NextConsolidation is when the next pass should run.
	NextConsolidation time.Time `json:"next_consolidation"`

	// Interval is the regular cadence between passes.
	Interval time.Duration `json:"consolidation_interval"`

	// DeepInterval is the cadence for heavier maintenance passes.
	DeepInterval time.Duration `json:"deep_consolidation_interval"`

	// MaintenanceMode marks the schedule as maintenance-only.
	MaintenanceMode bool `json:"maintenance_mode"`
}

// DefaultSchedule suggests a first pass in one hour, regular passes every
// six hours, and deep passes daily.
func DefaultSchedule(now time.Time) Schedule {
	return Schedule{
		NextConsolidation: now.Add(time.Hour),
		Interval:          6 * time.Hour,
		DeepInterval:      24 * time.Hour,
	}
}
