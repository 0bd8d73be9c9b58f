package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to every writer in turn. A failing writer does not
// stop the others; its error is returned and kept in Err.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write reports len(p) if at least one writer took the whole message.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err     error
		written bool
	)
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		written = true
	}

	if err != nil {
		cw.Err = err
	}
	if !written && len(cw.Writers) > 0 {
		return 0, err
	}
	return len(p), err
}
