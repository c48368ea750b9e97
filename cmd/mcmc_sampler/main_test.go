package main

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCapturedStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())
	os.Stdout = old

	var buf strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')
	}
	return buf.String()
}

func writeTempFacetList(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "facets-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestRunEmitsRequestedSampleCount(t *testing.T) {
	path := writeTempFacetList(t, "0 1\n1 2\n2 3\n3 4\n4 0\n")

	var code int
	out := withCapturedStdout(t, func() {
		code = run([]string{"-b", "0", "-t", "3", "-f", "2", "-d", "7", path})
	})

	assert.Equal(t, 0, code)
	assert.Equal(t, 3, strings.Count(out, "# Sample:"))
}

func TestRunFailsOnMissingFile(t *testing.T) {
	code := run([]string{"-t", "1", "/nonexistent/path/for/scm/test"})
	assert.NotEqual(t, 0, code)
}

func TestRunPrintsUsageOnHelp(t *testing.T) {
	code := run([]string{"-h"})
	assert.Equal(t, 0, code)
}
