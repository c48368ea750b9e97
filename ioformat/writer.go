package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/sanitize"
)

// Writer emits samples to Out: one line per facet, vertex tokens
// space-separated, labels preferred over integer ids when Labels is set.
type Writer struct {
	Out    io.Writer
	Labels *sanitize.LabelMap

	buf *bufio.Writer
}

func (w *Writer) writer() *bufio.Writer {
	if w.buf == nil {
		w.buf = bufio.NewWriter(w.Out)
	}
	return w.buf
}

// WriteSample writes one complex: an optional leading comment line, then
// one line per facet. It flushes before returning so a caller that later
// redirects stdout never sees interleaved partial output.
func (w *Writer) WriteSample(k *complex.Complex, comment string) error {
	buf := w.writer()
	if comment != "" {
		if _, err := fmt.Fprintln(buf, comment); err != nil {
			return err
		}
	}
	for f := 0; f < k.F(); f++ {
		vs := k.FacetNeighbors(f)
		for i, v := range vs {
			if i > 0 {
				if err := buf.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := buf.WriteString(w.token(v)); err != nil {
				return err
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteSeparator writes sep on its own line, flushing immediately after.
func (w *Writer) WriteSeparator(sep string) error {
	buf := w.writer()
	if _, err := fmt.Fprintln(buf, sep); err != nil {
		return err
	}
	return buf.Flush()
}

func (w *Writer) token(v int) string {
	if w.Labels != nil && v < w.Labels.N() {
		return w.Labels.Label(v)
	}
	return strconv.Itoa(v)
}
