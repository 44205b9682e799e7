// copy_mmap.go - write a mapped region to the destination
//
// (c) 2021 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package fcopy

import (
	"fmt"
	"io"
)

// writeOnce issues exactly one write of 'b' to 'w'. Anything short of
// len(b) bytes is a failure.
func writeOnce(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("wrote %d of %d bytes", n, len(b))
	}
	return nil
}

// mapSize validates that a file of 'sz' bytes can be mapped in one
// piece into this address space.
func mapSize(sz int64) (int, error) {
	if sz < 0 {
		return 0, fmt.Errorf("negative size %d", sz)
	}
	if sz != int64(int(sz)) {
		return 0, fmt.Errorf("size %d too large to map", sz)
	}
	return int(sz), nil
}
