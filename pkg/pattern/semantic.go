package pattern

import "sort"

// MaxNeighbors bounds a word's adjacency list after compaction.
const MaxNeighbors = 20

// Network is the semantic adjacency map: word -> related words.
//
// During learning the lists grow unbounded and may contain duplicates;
// duplicates bias the predictor's random fallback toward frequent neighbors.
// Compact is applied during consolidation to dedup, sort, and cap each list.
type Network map[string][]string

// Associate records a bidirectional edge between a and b.
func (n Network) Associate(a, b string) {
	n[a] = append(n[a], b)
	n[b] = append(n[b], a)
}

// Neighbors returns the adjacency list of w (nil if unknown).
func (n Network) Neighbors(w string) []string {
	return n[w]
}

// Compact deduplicates, sorts, and truncates every adjacency list to
// MaxNeighbors entries. Sorting before truncation makes the surviving set
// alphabetically stable regardless of insertion order.
func (n Network) Compact() {
	for w, related := range n {
		sort.Strings(related)
		deduped := related[:0]
		prev := ""
		for i, r := range related {
			if i == 0 || r != prev {
				deduped = append(deduped, r)
			}
			prev = r
		}
		if len(deduped) > MaxNeighbors {
			deduped = deduped[:MaxNeighbors]
		}
		n[w] = deduped
	}
}
