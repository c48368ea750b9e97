// Package rejection implements the other way to land in the SCM ensemble:
// rebuild a uniformly random matching from the current stub lists and keep
// it only if it happens to be a simplicial complex, retrying otherwise.
//
// Shuffle's "flatten to stubs, shuffle one side, reconnect pairwise" shape
// is the same stub-matching lvlath's builder.RandomRegular uses to realize
// a d-regular graph, generalized from a fixed per-vertex degree to
// arbitrary facet/vertex sequences and with no mode gate (any sizes/degrees
// are legal input here; builder.RandomRegular additionally rejects loops
// and multiedges against the graph's mode flags, which has no equivalent in
// the SCM's multiset model).
package rejection
