package ensemble

import "github.com/scmsampler/scm/complex"

// HasMultiEdge reports whether facet f repeats a vertex: its neighbor
// multiset's deduplicated cardinality is smaller than its raw cardinality.
func HasMultiEdge(k *complex.Complex, f int) bool {
	vs := k.FacetNeighbors(f)
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// IncludedIn returns every facet (other than f) whose vertex set is a
// superset of f's. f must not have a multi-edge (callers check that first —
// see IsSimplicialComplex's ordering); a facet containing a duplicate
// vertex makes "every vertex of f" ambiguous to intersect against.
//
// The result is computed by starting from the facet-neighborhood of f's
// first vertex and intersecting it, one vertex at a time, with the
// facet-neighborhoods of the rest. The intersection is empty iff f is not
// included in any other facet. Cost is roughly Σ_v degree(v) over f's
// vertices, short-circuiting to O(1) the moment the candidate set empties.
func IncludedIn(k *complex.Complex, f int) []int {
	vs := k.FacetNeighbors(f)
	if len(vs) == 0 {
		return nil
	}

	candidates := make(map[int]struct{})
	for _, f2 := range k.VertexNeighbors(vs[0]) {
		if f2 != f {
			candidates[f2] = struct{}{}
		}
	}

	for _, v := range vs[1:] {
		if len(candidates) == 0 {
			break
		}
		next := make(map[int]struct{}, len(candidates))
		for _, f2 := range k.VertexNeighbors(v) {
			if f2 == f {
				continue
			}
			if _, ok := candidates[f2]; ok {
				next[f2] = struct{}{}
			}
		}
		candidates = next
	}

	if len(candidates) == 0 {
		return nil
	}
	out := make([]int, 0, len(candidates))
	for f2 := range candidates {
		out = append(out, f2)
	}
	return out
}

// IsSimplicialComplex runs both ensemble checks over every facet, the
// multi-edge check first since it's the cheaper of the two and lets the
// inclusion check short-circuit entirely for a facet that already fails.
func IsSimplicialComplex(k *complex.Complex) bool {
	for f := 0; f < k.F(); f++ {
		if HasMultiEdge(k, f) {
			return false
		}
		if len(IncludedIn(k, f)) > 0 {
			return false
		}
	}
	return true
}

// LocalCheckSet returns the set of facets a Commit must re-validate after
// applying moves: the facets the moves touched directly, plus every facet
// sharing a modified vertex. A multi-edge or inclusion newly introduced by
// the proposal must involve at least one of these — moves elsewhere in the
// complex can't have changed, so there is nothing else to check.
func LocalCheckSet(k *complex.Complex, moves []complex.Move) []int {
	set := make(map[int]struct{})
	for _, m := range moves {
		set[m.Facet] = struct{}{}
		for _, f2 := range k.VertexNeighbors(m.Vertex) {
			set[f2] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	return out
}

// CheckFacets runs the multi-edge-then-inclusion check over exactly the
// given facets, short-circuiting on the first failure. This is what Commit
// calls against LocalCheckSet's output.
func CheckFacets(k *complex.Complex, facets []int) bool {
	for _, f := range facets {
		if HasMultiEdge(k, f) {
			return false
		}
		if len(IncludedIn(k, f)) > 0 {
			return false
		}
	}
	return true
}
