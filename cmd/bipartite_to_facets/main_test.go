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

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "edges-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestRunPrintsOneLinePerFacet(t *testing.T) {
	path := writeTemp(t, "1 1\n1 2\n2 2\n2 3\n")

	var code int
	out := withCapturedStdout(t, func() {
		code = run([]string{path})
	})

	assert.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRunPrintsUsageOnHelp(t *testing.T) {
	code := run([]string{"-h"})
	assert.Equal(t, 0, code)
}

func TestRunFailsOnMissingFile(t *testing.T) {
	code := run([]string{"/nonexistent/path/for/scm/test"})
	assert.NotEqual(t, 0, code)
}
