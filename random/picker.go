package random

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Picker draws an index in [0, len(weights)) with probability proportional
// to weights[i], via a precomputed cumulative-sum ticket table. Building it
// is O(len(weights)); each draw is O(log len(weights)).
type Picker struct {
	items []int     // the value returned for each slot, usually 0..len-1
	cum   []float64 // cumulative sum of weights, cum[len-1] == total
}

// NewPicker builds a ticket table over items[i] with weight weights[i].
// len(items) must equal len(weights); every weight must be >= 0 and at
// least one must be > 0.
func NewPicker(items []int, weights []float64) *Picker {
	if len(items) != len(weights) {
		panic("random: items and weights must have equal length")
	}
	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)
	return &Picker{items: append([]int(nil), items...), cum: cum}
}

// Pick draws one ticket uniformly in (0, total] and returns the item whose
// cumulative range contains it.
func (p *Picker) Pick(rng *rand.Rand) int {
	total := p.cum[len(p.cum)-1]
	draw := (1 - rng.Float64()) * total
	i := sort.SearchFloat64s(p.cum, draw)
	if i >= len(p.items) {
		i = len(p.items) - 1
	}
	return p.items[i]
}

// PreferentialPicker selects a vertex with probability degree(v)/M. Because
// MCMC proposals preserve every vertex's degree exactly, the weight vector
// never changes over the life of a run, so the ticket table is built once
// and reused for every draw.
type PreferentialPicker struct {
	picker *Picker
}

// NewPreferentialPicker builds the static ticket table from the initial
// degree sequence degrees[v] = degree of vertex v.
func NewPreferentialPicker(degrees []int) *PreferentialPicker {
	items := make([]int, len(degrees))
	weights := make([]float64, len(degrees))
	for v, d := range degrees {
		items[v] = v
		weights[v] = float64(d)
	}
	return &PreferentialPicker{picker: NewPicker(items, weights)}
}

// Vertex draws one vertex id, proportional to its degree.
func (p *PreferentialPicker) Vertex(rng *rand.Rand) int {
	return p.picker.Pick(rng)
}

// UniformFacetPick chooses one facet uniformly at random from vertex v's
// incident multiset. Each occurrence in the multiset is a distinct ticket,
// so a vertex incident to the same facet twice is twice as likely to
// surface it — the stub-pair semantics the MCMC kernel's proposal step
// relies on.
func UniformFacetPick(neighbors []int, rng *rand.Rand) int {
	return neighbors[rng.Intn(len(neighbors))]
}
