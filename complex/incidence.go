package complex

// Connect inserts v into facet f's vertex multiset and f into v's facet
// multiset. Repeated calls with the same (f, v) are allowed and increment
// multiplicity — that is the point of using multisets (see package doc).
//
// f and v are internal ids, never user input; an out-of-range id is a
// programmer error and panics, mirroring Disconnect's assertion contract.
func (k *Complex) Connect(f, v int) {
	k.mustFacet(f)
	k.mustVertex(v)
	k.facetToVertices[f] = append(k.facetToVertices[f], v)
	k.vertexToFacets[v] = append(k.vertexToFacets[v], f)
	k.m++
}

// Disconnect removes exactly one occurrence of v from facet f's multiset and
// one occurrence of f from v's multiset. v must currently occur in facet f;
// violating that is a programmer error (the mirror invariant would already
// be broken) and Disconnect panics rather than returning an error, per the
// spec's error taxonomy for assertion failures.
func (k *Complex) Disconnect(f, v int) {
	k.mustFacet(f)
	k.mustVertex(v)
	k.facetToVertices[f] = removeOne(k.facetToVertices[f], v)
	k.vertexToFacets[v] = removeOne(k.vertexToFacets[v], f)
	k.m--
}

// removeOne deletes the first occurrence of x from s and returns the
// shortened slice. It panics if x is not present, since every call site
// already knows the occurrence must exist (mirror invariant).
func removeOne(s []int, x int) []int {
	for i, y := range s {
		if y == x {
			return append(s[:i], s[i+1:]...)
		}
	}
	panic("complex: disconnect of an edge that does not exist")
}

// DisconnectAll empties both adjacencies in place while preserving F() and
// N(). Used by the rejection kernel before rebuilding a fresh matching.
func (k *Complex) DisconnectAll() {
	for f := range k.facetToVertices {
		k.facetToVertices[f] = k.facetToVertices[f][:0]
	}
	for v := range k.vertexToFacets {
		k.vertexToFacets[v] = k.vertexToFacets[v][:0]
	}
	k.m = 0
}

// FacetNeighbors returns the vertex multiset of facet f as a direct,
// read-only view — not a copy. Callers in hot paths (the inclusion check in
// package ensemble) rely on this being O(1).
func (k *Complex) FacetNeighbors(f int) []int {
	k.mustFacet(f)
	return k.facetToVertices[f]
}

// VertexNeighbors returns the facet multiset of vertex v as a direct,
// read-only view.
func (k *Complex) VertexNeighbors(v int) []int {
	k.mustVertex(v)
	return k.vertexToFacets[v]
}

// Size returns |facetToVertices[f]|, the current size of facet f.
func (k *Complex) Size(f int) int { k.mustFacet(f); return len(k.facetToVertices[f]) }

// Degree returns |vertexToFacets[v]|, the current degree of vertex v.
func (k *Complex) Degree(v int) int { k.mustVertex(v); return len(k.vertexToFacets[v]) }

// F returns the number of facets.
func (k *Complex) F() int { return len(k.facetToVertices) }

// N returns the number of vertices.
func (k *Complex) N() int { return len(k.vertexToFacets) }

// M returns Σ size(f), maintained incrementally so this is O(1).
func (k *Complex) M() int { return k.m }

// StubLists flattens the current adjacency into two aligned stub lists: each
// facet f appears Size(f) times in the returned facetStubs, each vertex v
// appears Degree(v) times in vertexStubs, both in ascending id order. This
// is the read half of the rejection kernel's shuffle (package rejection);
// see RebuildFromStubs for the write half.
func (k *Complex) StubLists() (facetStubs, vertexStubs []int) {
	facetStubs = make([]int, 0, k.m)
	for f, vs := range k.facetToVertices {
		for range vs {
			facetStubs = append(facetStubs, f)
		}
	}
	vertexStubs = make([]int, 0, k.m)
	for v, fs := range k.vertexToFacets {
		for range fs {
			vertexStubs = append(vertexStubs, v)
		}
	}
	return facetStubs, vertexStubs
}

// RebuildFromStubs clears both adjacencies and reconnects them pairwise from
// two equal-length stub lists. It does not shuffle anything itself — callers
// (package rejection's Shuffle, FromSequences in construct.go) are
// expected to have already permuted vertexStubs so the pairing is random.
func (k *Complex) RebuildFromStubs(facetStubs, vertexStubs []int) {
	if len(facetStubs) != len(vertexStubs) {
		panic("complex: stub lists must have equal length")
	}
	k.DisconnectAll()
	for i := range facetStubs {
		k.Connect(facetStubs[i], vertexStubs[i])
	}
}

// Clone returns a deep copy: mutating the clone never affects k or vice
// versa. Used by tests verifying apply/revert round-trips and by callers
// that want a snapshot before a risky sequence of moves.
func (k *Complex) Clone() *Complex {
	out := &Complex{
		facetToVertices: make([][]int, len(k.facetToVertices)),
		vertexToFacets:  make([][]int, len(k.vertexToFacets)),
		m:               k.m,
	}
	for f, vs := range k.facetToVertices {
		out.facetToVertices[f] = append([]int(nil), vs...)
	}
	for v, fs := range k.vertexToFacets {
		out.vertexToFacets[v] = append([]int(nil), fs...)
	}
	return out
}

// Equal reports whether k and other have identical adjacencies, treating
// each facet's and vertex's neighbor list as a multiset (order-independent).
// Used by tests; not on any hot path.
func (k *Complex) Equal(other *Complex) bool {
	if k.F() != other.F() || k.N() != other.N() || k.M() != other.M() {
		return false
	}
	for f := range k.facetToVertices {
		if !sameMultiset(k.facetToVertices[f], other.facetToVertices[f]) {
			return false
		}
	}
	for v := range k.vertexToFacets {
		if !sameMultiset(k.vertexToFacets[v], other.vertexToFacets[v]) {
			return false
		}
	}
	return true
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func (k *Complex) mustFacet(f int) {
	if f < 0 || f >= len(k.facetToVertices) {
		panic("complex: facet id out of range")
	}
}

func (k *Complex) mustVertex(v int) {
	if v < 0 || v >= len(k.vertexToFacets) {
		panic("complex: vertex id out of range")
	}
}
