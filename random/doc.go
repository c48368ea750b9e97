// Package random implements the two selectors the SCM ensemble's sampling
// kernels are built from: a size-proportional ("preferential") pick of a
// vertex, and a uniform pick of a facet from a vertex's neighborhood.
// Together these implement stub-pair sampling: draw v with probability
// degree(v)/M, then f uniformly among v's incident facets. The marginal
// distribution over edges this produces is uniform.
//
// Ticket tables (Picker) are built with gonum/floats.CumSum rather than a
// per-draw O(N) linear scan — see lvlath's builder package for the same
// "precompute once, binary-search per draw" shape applied to weighted edge
// construction.
package random
