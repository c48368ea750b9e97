package complex

import "math/rand"

// FromSequences builds a Complex whose facet sizes and vertex degrees match
// sizes and degrees exactly, via uniform stub matching: a facet-stub list
// (each facet f repeated sizes[f] times) is paired against a vertex-stub
// list (each vertex v repeated degrees[v] times) after the vertex side is
// shuffled. This is the same stub-matching shape as lvlath's
// builder.RandomRegular — fill a stub slice by index, shuffle, pair
// consecutively — generalized from simple regular graphs to arbitrary
// facet/vertex sequences and with no validity retries, because the SCM
// matching space has no simplicial requirement to satisfy yet; that check
// belongs to the caller (package rejection's Randomize, or the MCMC driver's
// first Commit).
//
// The resulting Complex is a uniform random element of the matching space,
// a superset of the SCM ensemble — it may need Randomize to land on an
// actual simplicial complex.
func FromSequences(sizes, degrees []int, rng *rand.Rand) (*Complex, error) {
	total := 0
	for _, s := range sizes {
		if s <= 0 {
			return nil, ErrNonPositiveValue
		}
		total += s
	}
	degTotal := 0
	for _, d := range degrees {
		if d <= 0 {
			return nil, ErrNonPositiveValue
		}
		degTotal += d
	}
	if total != degTotal {
		return nil, ErrSequenceMismatch
	}

	facetStubs := make([]int, 0, total)
	for f, s := range sizes {
		for i := 0; i < s; i++ {
			facetStubs = append(facetStubs, f)
		}
	}
	vertexStubs := make([]int, 0, total)
	for v, d := range degrees {
		for i := 0; i < d; i++ {
			vertexStubs = append(vertexStubs, v)
		}
	}
	rng.Shuffle(len(vertexStubs), func(i, j int) {
		vertexStubs[i], vertexStubs[j] = vertexStubs[j], vertexStubs[i]
	})

	k := NewEmpty(len(sizes), len(degrees))
	k.RebuildFromStubs(facetStubs, vertexStubs)
	return k, nil
}
