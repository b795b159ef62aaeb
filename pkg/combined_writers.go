package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers, e.g. stdout
// and the rotating log file. A failing writer does not stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

// NewCombinedWriter skips nil writers.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write reports the most bytes any single writer took, so a caller sees a
// full write as long as one destination got the whole line.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		err = multierr.Append(err, werr)
		n = max(n, written)
	}
	return n, err
}
