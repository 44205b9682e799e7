// mmap_unix.go - copy using a private read-only mmap(2)
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

//go:build unix

package fcopy

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// copyViaMmap maps 'sz' bytes of src and writes them to 'w' in a single
// write; 'dst' names the destination in errors. The mapping is released
// before returning.
func copyViaMmap(w io.Writer, dst string, src *os.File, sz int64) (err error) {
	if sz == 0 {
		return nil
	}

	n, err := mapSize(sz)
	if err != nil {
		return &CopyError{ErrMap, "mmap", src.Name(), dst, err}
	}

	b, err := unix.Mmap(int(src.Fd()), 0, n, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return &CopyError{ErrMap, "mmap", src.Name(), dst, err}
	}

	defer func() {
		if e := unix.Munmap(b); e != nil && err == nil {
			err = &CopyError{ErrMap, "munmap", src.Name(), dst, e}
		}
	}()

	// advisory only
	_ = unix.Madvise(b, unix.MADV_SEQUENTIAL)

	if err = writeOnce(w, b); err != nil {
		return &CopyError{ErrShortWrite, "write", src.Name(), dst, err}
	}
	return nil
}
