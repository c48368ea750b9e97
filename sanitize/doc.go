// Package sanitize turns a raw, possibly multigraph-like facet list into
// the maximal-facet list a Complex can be built from cleanly: duplicate
// facets collapse to one, a facet wholly contained in a larger one is
// dropped, and vertex labels are assigned contiguous ids by first
// appearance.
//
// A facet is a set at this stage, not a multiset — a repeated label within
// one input line collapses before any inclusion testing happens, so
// "subset" below always means ordinary set inclusion.
package sanitize
