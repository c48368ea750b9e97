package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scmsampler/scm/sanitize"
)

// ParseFacetList reads a UTF-8 facet-list file: one facet per line, a line
// being a whitespace-separated sequence of vertex labels. Empty lines are
// skipped.
func ParseFacetList(r io.Reader) ([]sanitize.RawFacet, error) {
	var facets []sanitize.RawFacet
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		facets = append(facets, sanitize.RawFacet(fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading facet list: %w", err)
	}
	return facets, nil
}

// ParseSequence reads a single line (or several; tokens are concatenated
// regardless) of whitespace-separated nonnegative integers, as used for the
// degree and size sequence files that drive sequence-mode construction.
func ParseSequence(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var seq []int
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("ioformat: malformed integer token %q: %w", tok, err)
		}
		seq = append(seq, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading sequence: %w", err)
	}
	return seq, nil
}
