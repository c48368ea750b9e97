// Package complex implements the bipartite incidence store that backs a
// sample from the Simplicial Configuration Model: two aligned adjacency
// multisets, facetToVertices and vertexToFacets, that together represent a
// set system of facets over a fixed vertex universe.
//
// Both sides are multisets rather than sets. An MCMC proposal detaches and
// reattaches stubs one at a time; the intermediate state between those steps
// may transiently hold a vertex twice in the same facet. Using a Go set
// (map[int]struct{}) would silently coalesce the duplicate and corrupt the
// size/degree bookkeeping the whole sampler depends on, so both adjacencies
// are plain slices with repeats.
//
// Complex owns its two adjacencies exclusively (see lvlath/core's Graph for
// the same "owning container, thin accessor" shape this is modeled on). It
// does not own a random source or a vertex-label map — those belong to the
// driver and the I/O layer respectively.
//
// Complex is not safe for concurrent use. The sampler that drives it is
// strictly single-threaded (see package sampler), so no locking is paid for
// here, unlike lvlath/core's Graph which is shared across goroutines.
package complex
