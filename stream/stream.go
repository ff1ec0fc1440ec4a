// Package stream provides the boundary I/O helpers the CLI driver
// uses around the transcoder: slurp an unbounded source into one
// contiguous buffer, and flush a whole buffer to a destination.
//
// Failures are wrapped as structured errors (PhaseRead / PhaseWrite)
// and are not retried; the caller is expected to abandon the
// operation.
package stream

import (
	"io"

	"github.com/wippyai/xtf8/errors"
)

// ReadAll reads r until EOF and returns the accumulated bytes.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.IOFailure(errors.PhaseRead, err)
	}
	return data, nil
}

// WriteAll writes all of data to w, failing on a partial write.
func WriteAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return errors.IOFailure(errors.PhaseWrite, err)
	}
	if n != len(data) {
		return errors.New(errors.PhaseWrite, errors.KindShortWrite).
			Detail("wrote %d of %d bytes", n, len(data)).
			Build()
	}
	return nil
}
