package markov

import (
	"fmt"
	"math/rand/v2"
)

// edge is one successor of a token and the number of times it was observed.
type edge struct {
	next tokenID
	freq int
}

// transitions is the weighted successor table of a single token. Edges keep
// their insertion order, which is the order sample walks them in, so a seeded
// generator always reproduces the same choices.
type transitions struct {
	edges []edge
	index map[tokenID]int // next -> position in edges
	total int
}

func newTransitions() *transitions {
	return &transitions{
		index: make(map[tokenID]int),
	}
}

// record counts one more observation of next following this token.
func (t *transitions) record(next tokenID) {
	slot, ok := t.index[next]
	if !ok {
		slot = len(t.edges)
		t.edges = append(t.edges, edge{next: next})
		t.index[next] = slot
	}
	t.edges[slot].freq++
	t.total++
}

// sample picks a successor with probability proportional to its frequency.
// It must only be called on a table with at least one observation; an empty
// table returns ErrEmptyDistribution.
func (t *transitions) sample(r *rand.Rand) (tokenID, error) {
	if t.total == 0 {
		return 0, ErrEmptyDistribution
	}
	draw := r.IntN(t.total)
	sum := 0
	for _, e := range t.edges {
		sum += e.freq
		if sum > draw {
			return e.next, nil
		}
	}
	// Only reachable if total disagrees with the edge frequencies.
	return 0, fmt.Errorf("draw %d not covered by total %d: %w", draw, t.total, ErrEmptyDistribution)
}
