package complex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmsampler/scm/complex"
)

func TestConnectDisconnectMirrorAndCount(t *testing.T) {
	k := complex.NewEmpty(2, 3)
	k.Connect(0, 0)
	k.Connect(0, 1)
	k.Connect(1, 1)
	k.Connect(1, 2)

	assert.Equal(t, 4, k.M())
	assert.Equal(t, 2, k.Size(0))
	assert.Equal(t, 2, k.Degree(1))
	assert.ElementsMatch(t, []int{0, 1}, k.FacetNeighbors(0))
	assert.ElementsMatch(t, []int{0, 1}, k.VertexNeighbors(1))

	k.Disconnect(0, 1)
	assert.Equal(t, 3, k.M())
	assert.Equal(t, 1, k.Size(0))
	assert.Equal(t, 1, k.Degree(1))
}

func TestDisconnectMissingEdgePanics(t *testing.T) {
	k := complex.NewEmpty(1, 1)
	assert.Panics(t, func() { k.Disconnect(0, 0) })
}

func TestDisconnectAllPreservesShape(t *testing.T) {
	k := complex.NewEmpty(2, 2)
	k.Connect(0, 0)
	k.Connect(1, 1)
	k.DisconnectAll()
	assert.Equal(t, 0, k.M())
	assert.Equal(t, 2, k.F())
	assert.Equal(t, 2, k.N())
}

func TestCloneIsIndependent(t *testing.T) {
	k := complex.NewFromFacets([][]int{{0, 1}, {1, 2}}, 3)
	clone := k.Clone()
	assert.True(t, k.Equal(clone))

	clone.Disconnect(0, 0)
	assert.False(t, k.Equal(clone))
	assert.Equal(t, 2, k.Size(0), "mutating the clone must not affect the original")
}

func TestStubListsRoundTripThroughRebuild(t *testing.T) {
	k := complex.NewFromFacets([][]int{{0, 1, 2}, {2, 3}}, 4)
	facetStubs, vertexStubs := k.StubLists()

	rebuilt := complex.NewEmpty(k.F(), k.N())
	rebuilt.RebuildFromStubs(facetStubs, vertexStubs)

	assert.True(t, k.Equal(rebuilt))
}

func TestFromSequencesPreservesSizeAndDegree(t *testing.T) {
	sizes := []int{3, 2}
	degrees := []int{1, 2, 2}
	rng := rand.New(rand.NewSource(1))

	k, err := complex.FromSequences(sizes, degrees, rng)
	require.NoError(t, err)

	for f, s := range sizes {
		assert.Equal(t, s, k.Size(f))
	}
	for v, d := range degrees {
		assert.Equal(t, d, k.Degree(v))
	}
	assert.Equal(t, 5, k.M())
}

func TestFromSequencesRejectsMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := complex.FromSequences([]int{2, 2}, []int{1, 1, 1}, rng)
	assert.ErrorIs(t, err, complex.ErrSequenceMismatch)
}
