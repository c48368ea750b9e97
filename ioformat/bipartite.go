package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/scmsampler/scm/sanitize"
)

// edge is one KONECT edge-list line: a (left, right) pair, 1-indexed as
// stored on disk.
type edge struct {
	left, right int
}

// ParseKonectEdgeList reads a KONECT-format bipartite edge list: one edge
// per line as two whitespace-separated 1-indexed integers, "%"-prefixed
// lines ignored as comments. Duplicate edges collapse to one.
func ParseKonectEdgeList(r io.Reader) ([]edge, error) {
	seen := make(map[edge]struct{})
	var edges []edge
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("ioformat: malformed KONECT edge %q", line)
		}
		l, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ioformat: malformed KONECT edge %q: %w", line, err)
		}
		r, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ioformat: malformed KONECT edge %q: %w", line, err)
		}
		e := edge{left: l - 1, right: r - 1}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading KONECT edge list: %w", err)
	}
	return edges, nil
}

// remapBipartiteEdgeList relabels both sides of edges from 0, by order of
// first appearance — it does not preserve the original on-disk ids.
func remapBipartiteEdgeList(edges []edge) []edge {
	leftIDs := make(map[int]int)
	rightIDs := make(map[int]int)
	out := make([]edge, len(edges))
	for i, e := range edges {
		l, ok := leftIDs[e.left]
		if !ok {
			l = len(leftIDs)
			leftIDs[e.left] = l
		}
		r, ok := rightIDs[e.right]
		if !ok {
			r = len(rightIDs)
			rightIDs[e.right] = r
		}
		out[i] = edge{left: l, right: r}
	}
	return out
}

// BipartiteToMaxFacets converts a KONECT-format bipartite edge list to a
// maximal-facet list: facetCol selects which side of the bipartition (0 for
// left, 1 for right) becomes the facet axis, the other side becoming the
// vertex axis. Edges are remapped to contiguous ids on both sides first, so
// the returned facets use decimal-string labels starting at "0" rather than
// the original on-disk ids — run the result through sanitize.Sanitize if
// the source graph was not already facet-maximal.
func BipartiteToMaxFacets(r io.Reader, facetCol int) ([]sanitize.RawFacet, error) {
	if facetCol != 0 && facetCol != 1 {
		return nil, fmt.Errorf("ioformat: facetCol must be 0 or 1, got %d", facetCol)
	}
	edges, err := ParseKonectEdgeList(r)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, nil
	}
	edges = remapBipartiteEdgeList(edges)

	key := func(e edge) (int, int) {
		if facetCol == 0 {
			return e.left, e.right
		}
		return e.right, e.left
	}
	sort.Slice(edges, func(i, j int) bool {
		fi, vi := key(edges[i])
		fj, vj := key(edges[j])
		if fi != fj {
			return fi < fj
		}
		return vi < vj
	})

	var facets []sanitize.RawFacet
	var current []string
	prevFacet, haveFacet := -1, false
	for _, e := range edges {
		f, v := key(e)
		if haveFacet && f != prevFacet {
			facets = append(facets, current)
			current = nil
		}
		current = append(current, strconv.Itoa(v))
		prevFacet, haveFacet = f, true
	}
	if len(current) > 0 {
		facets = append(facets, current)
	}
	return facets, nil
}
