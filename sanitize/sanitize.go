package sanitize

import (
	"sort"

	"github.com/scmsampler/scm/complex"
)

// RawFacet is one input line: an unordered list of external vertex labels,
// as parsed from a facet-list file (package ioformat). Duplicate labels
// within one RawFacet are legal input — sanitize.Sanitize collapses them.
type RawFacet = []string

// Result is the outcome of sanitizing a raw facet list: a Complex built
// from the maximal surviving facets, the label map assigned along the way,
// and the largest facet size seen (used to seed L_max defaults).
type Result struct {
	Complex *complex.Complex
	Labels  *LabelMap
	MaxSize int
}

type facetSet struct {
	ids  map[int]struct{}
	size int
}

// Sanitize assigns contiguous ids by first appearance, groups facets by
// cardinality, deduplicates within each group, then drops any facet that is
// a subset of a larger surviving facet.
func Sanitize(raw []RawFacet) (*Result, error) {
	labels := NewLabelMap()

	var facets []facetSet
	for _, rf := range raw {
		if len(rf) == 0 {
			continue
		}
		ids := make(map[int]struct{}, len(rf))
		for _, label := range rf {
			ids[labels.idFor(label)] = struct{}{}
		}
		facets = append(facets, facetSet{ids: ids, size: len(ids)})
	}

	bySize := make(map[int][]facetSet)
	maxSize := 0
	for _, f := range facets {
		bySize[f.size] = append(bySize[f.size], f)
		if f.size > maxSize {
			maxSize = f.size
		}
	}
	for size := range bySize {
		bySize[size] = dedupeGroup(bySize[size])
	}

	sizes := make([]int, 0, len(bySize))
	for s := range bySize {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	var survivors []facetSet
	for _, s := range sizes {
		for _, f := range bySize[s] {
			if includedInAny(f, survivors) {
				continue
			}
			survivors = append(survivors, f)
		}
	}

	facetsOut := make([][]int, len(survivors))
	for i, f := range survivors {
		vs := make([]int, 0, len(f.ids))
		for v := range f.ids {
			vs = append(vs, v)
		}
		sort.Ints(vs)
		facetsOut[i] = vs
	}

	k := complex.NewFromFacets(facetsOut, labels.N())
	return &Result{Complex: k, Labels: labels, MaxSize: maxSize}, nil
}

// AssumeCleansed builds a Result directly from raw, trusting the caller's
// claim that it is already a maximal-facet list: no deduplication and no
// subset-dropping pass runs, only label assignment. This backs the CLI's
// `-c`/`--cleansed_input` flag, which exists precisely to skip the
// O(F^2)-ish work Sanitize does when the caller already knows its input is
// clean.
func AssumeCleansed(raw []RawFacet) (*Result, error) {
	labels := NewLabelMap()

	facetsOut := make([][]int, 0, len(raw))
	maxSize := 0
	for _, rf := range raw {
		if len(rf) == 0 {
			continue
		}
		vs := make([]int, len(rf))
		for i, label := range rf {
			vs[i] = labels.idFor(label)
		}
		facetsOut = append(facetsOut, vs)
		if len(vs) > maxSize {
			maxSize = len(vs)
		}
	}

	k := complex.NewFromFacets(facetsOut, labels.N())
	return &Result{Complex: k, Labels: labels, MaxSize: maxSize}, nil
}

// dedupeGroup collapses identical vertex sets within one size group to a
// single representative, preserving first-appearance order.
func dedupeGroup(group []facetSet) []facetSet {
	out := make([]facetSet, 0, len(group))
	for _, f := range group {
		dup := false
		for _, g := range out {
			if setEqual(f.ids, g.ids) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

// includedInAny reports whether f's vertex set is a (possibly equal, but
// groups are already deduplicated so only proper) subset of some facet
// already accepted into survivors.
func includedInAny(f facetSet, survivors []facetSet) bool {
	for _, s := range survivors {
		if isSubset(f.ids, s.ids) {
			return true
		}
	}
	return false
}

func setEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	return isSubset(a, b)
}

func isSubset(a, b map[int]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}
