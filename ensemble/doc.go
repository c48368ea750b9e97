// Package ensemble decides membership in the Simplicial Configuration Model
// ensemble: a committed complex.Complex is a simplicial complex iff no
// facet repeats a vertex and no facet is included in another.
//
// The inclusion check avoids the naive O(F^2) pairwise comparison by
// intersecting facet-neighborhoods one vertex at a time — the same
// "narrow down a candidate set by iterative intersection" shape as
// lvlath's graph.IncidenceMatrix helpers, generalized from matrix rows to
// the Complex's own adjacency. LocalCheckSet further restricts this to the
// handful of facets an MCMC proposal could possibly have broken, so a
// Commit never has to re-validate the whole complex.
package ensemble
