// Package summarizer rewrites consolidated cluster summaries.
//
// It supports two modes, following the same split as the importance
// evaluation it sits next to:
//   - Heuristic: the canonical template string (no I/O, always available)
//   - OpenAI: an LLM rewrite of the cluster's content (requires an API key)
//
// Summarization is an explicit post-consolidation step. A consolidation
// pass never performs network I/O; callers invoke the summarizer separately
// after a pass completes.
package summarizer

import (
	"context"
	"fmt"
)

// Summarizer produces a one-line summary for a consolidated memory cluster.
type Summarizer interface {
	// SummarizeCluster summarizes a cluster from its topic label and member
	// excerpts. memberCount is the cluster's original member count.
	SummarizeCluster(ctx context.Context, topic string, memberCount int, excerpts []string) (string, error)
}

// Heuristic is the default summarizer: the canonical template string, the
// same one produced during the consolidation pass itself.
type Heuristic struct{}

// NewHeuristic creates the heuristic summarizer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// SummarizeCluster returns the canonical cluster summary. Never fails.
func (h *Heuristic) SummarizeCluster(_ context.Context, topic string, memberCount int, _ []string) (string, error) {
	return fmt.Sprintf("Consolidated memory cluster about %s with %d related memories", topic, memberCount), nil
}
