package pattern_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmind/sigmem-go/pkg/pattern"
)

func TestAssociateIsBidirectional(t *testing.T) {
	n := make(pattern.Network)

	n.Associate("cat", "mat")

	assert.Equal(t, []string{"mat"}, n.Neighbors("cat"))
	assert.Equal(t, []string{"cat"}, n.Neighbors("mat"))
	assert.Nil(t, n.Neighbors("dog"))
}

func TestAssociateKeepsDuplicates(t *testing.T) {
	n := make(pattern.Network)

	// Duplicates bias the predictor's random fallback; dedup happens only
	// during compaction.
	n.Associate("cat", "mat")
	n.Associate("cat", "mat")

	assert.Equal(t, []string{"mat", "mat"}, n.Neighbors("cat"))
}

func TestCompactDedupsAndSorts(t *testing.T) {
	n := make(pattern.Network)
	n.Associate("cat", "rug")
	n.Associate("cat", "mat")
	n.Associate("cat", "rug")

	n.Compact()

	assert.Equal(t, []string{"mat", "rug"}, n.Neighbors("cat"))
}

func TestCompactCapsNeighborLists(t *testing.T) {
	n := make(pattern.Network)
	for i := 0; i < 30; i++ {
		n.Associate("hub", fmt.Sprintf("word%02d", i))
	}

	n.Compact()

	related := n.Neighbors("hub")
	assert.Len(t, related, pattern.MaxNeighbors)
	assert.True(t, sort.StringsAreSorted(related))
	// Alphabetical survival: the lowest-sorting entries are kept.
	assert.Equal(t, "word00", related[0])
}
