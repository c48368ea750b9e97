package rejection_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ensemble"
	"github.com/scmsampler/scm/rejection"
)

func TestShufflePreservesSequences(t *testing.T) {
	k := complex.NewFromFacets([][]int{{0, 1, 2}, {2, 3, 4}}, 5)
	sizesBefore := []int{k.Size(0), k.Size(1)}
	degreesBefore := make([]int, k.N())
	for v := range degreesBefore {
		degreesBefore[v] = k.Degree(v)
	}
	mBefore := k.M()

	rng := rand.New(rand.NewSource(2))
	rejection.Shuffle(k, rng)

	assert.Equal(t, mBefore, k.M())
	assert.Equal(t, sizesBefore[0], k.Size(0))
	assert.Equal(t, sizesBefore[1], k.Size(1))
	for v, d := range degreesBefore {
		assert.Equal(t, d, k.Degree(v))
	}
}

// Size sequence [2,2], degree sequence [1,1,1,1] must always converge to
// two disjoint 2-element facets.
func TestRandomizeProducesSimplicialComplex(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	k, err := complex.FromSequences([]int{2, 2}, []int{1, 1, 1, 1}, rng)
	assert.NoError(t, err)

	attempts := rejection.Randomize(k, rng)
	assert.GreaterOrEqual(t, attempts, 1)
	assert.True(t, ensemble.IsSimplicialComplex(k))
	assert.Equal(t, 2, k.Size(0))
	assert.Equal(t, 2, k.Size(1))
}
