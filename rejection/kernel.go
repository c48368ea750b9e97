package rejection

import (
	"math/rand"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ensemble"
)

// Shuffle rebuilds k's matching from scratch: it extracts the current
// facet-stub and vertex-stub lists (complex.Complex.StubLists), uniformly
// shuffles the vertex side, clears both adjacencies, and reconnects
// pairwise. The result preserves both sequences exactly and is a uniform
// random element of the matching space — a strict superset of the SCM
// ensemble, since a matching may still contain multi-edges or inclusions.
func Shuffle(k *complex.Complex, rng *rand.Rand) {
	facetStubs, vertexStubs := k.StubLists()
	rng.Shuffle(len(vertexStubs), func(i, j int) {
		vertexStubs[i], vertexStubs[j] = vertexStubs[j], vertexStubs[i]
	})
	k.RebuildFromStubs(facetStubs, vertexStubs)
}

// Randomize repeats Shuffle until the result is a simplicial complex and
// returns the number of attempts made (including the final, successful
// one) for reporting. There is no retry limit: on a pathological input the
// acceptance probability can be astronomically small, and the process is
// expected to be killed externally rather than bound this loop internally.
func Randomize(k *complex.Complex, rng *rand.Rand) int {
	attempts := 0
	for {
		attempts++
		Shuffle(k, rng)
		if ensemble.IsSimplicialComplex(k) {
			return attempts
		}
	}
}
