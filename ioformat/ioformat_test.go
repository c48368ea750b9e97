package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ioformat"
	"github.com/scmsampler/scm/sanitize"
)

func TestParseFacetListSkipsEmptyLines(t *testing.T) {
	in := "a b c\n\na b\n\n\nd e\n"
	facets, err := ioformat.ParseFacetList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, facets, 3)
	assert.Equal(t, sanitize.RawFacet{"a", "b", "c"}, facets[0])
}

func TestParseSequence(t *testing.T) {
	seq, err := ioformat.ParseSequence(strings.NewReader("2 2 1  3\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1, 3}, seq)
}

func TestParseSequenceRejectsMalformedToken(t *testing.T) {
	_, err := ioformat.ParseSequence(strings.NewReader("2 x 3"))
	assert.Error(t, err)
}

func TestWriterEmitsLabelsWhenPresent(t *testing.T) {
	k := complex.NewFromFacets([][]int{{0, 1}, {1, 2}}, 3)
	labels := sanitize.NewLabelMap()
	labels.ToID = map[string]int{"a": 0, "b": 1, "c": 2}
	labels.ToLabel = []string{"a", "b", "c"}

	var out bytes.Buffer
	w := &ioformat.Writer{Out: &out, Labels: labels}
	require.NoError(t, w.WriteSample(k, "# Sample:"))

	got := out.String()
	assert.Contains(t, got, "# Sample:")
	assert.Contains(t, got, "a b")
	assert.Contains(t, got, "b c")
}

func TestWriterFallsBackToIDs(t *testing.T) {
	k := complex.NewFromFacets([][]int{{0, 1}}, 2)
	var out bytes.Buffer
	w := &ioformat.Writer{Out: &out}
	require.NoError(t, w.WriteSample(k, ""))
	assert.Equal(t, "0 1\n", out.String())
}
