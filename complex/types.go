package complex

// Move is one half-edge rewiring step: attach or detach vertex Vertex from
// facet Facet. An MCMC proposal is a slice of Moves; by convention all
// detaches precede all attaches (spec ordering), and reverting a proposal
// replays the slice in reverse with Attach flipped.
type Move struct {
	Facet  int
	Vertex int
	Attach bool
}

// Inverse returns the inverse of m: the move that undoes it.
func (m Move) Inverse() Move {
	return Move{Facet: m.Facet, Vertex: m.Vertex, Attach: !m.Attach}
}

// Complex is a bipartite incidence store: facetToVertices[f] is the multiset
// of vertices in facet f, vertexToFacets[v] is the multiset of facets
// containing vertex v. The two are kept mirrored by every mutating method;
// see the package doc for why they are multisets.
type Complex struct {
	facetToVertices [][]int
	vertexToFacets  [][]int
	m               int // cached Σ size(f) == Σ degree(v)
}

// NewEmpty allocates a Complex with f facets and n vertices and no
// incidences. Callers populate it via Connect or RebuildFromStubs.
func NewEmpty(f, n int) *Complex {
	return &Complex{
		facetToVertices: make([][]int, f),
		vertexToFacets:  make([][]int, n),
	}
}

// NewFromFacets builds a Complex directly from a sanitized maximal-facet
// list: facets[f] is the (already deduplicated) set of vertex ids in facet
// f. Every vertex id referenced must be < n.
func NewFromFacets(facets [][]int, n int) *Complex {
	k := NewEmpty(len(facets), n)
	for f, vs := range facets {
		for _, v := range vs {
			k.Connect(f, v)
		}
	}
	return k
}
