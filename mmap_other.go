// mmap_other.go - mapped copy for non-unix platforms
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

//go:build !unix

package fcopy

import (
	"io"
	"os"

	"github.com/opencoff/go-mmap"
)

// go-mmap may hand us the source in more than one mapped window; each
// window is written with a single write.
func copyViaMmap(w io.Writer, dst string, src *os.File, sz int64) error {
	if sz == 0 {
		return nil
	}

	if _, err := mapSize(sz); err != nil {
		return &CopyError{ErrMap, "mmap", src.Name(), dst, err}
	}

	var werr error
	_, err := mmap.Reader(src, func(b []byte) error {
		werr = writeOnce(w, b)
		return werr
	})

	switch {
	case werr != nil:
		return &CopyError{ErrShortWrite, "write", src.Name(), dst, werr}
	case err != nil:
		return &CopyError{ErrMap, "mmap-reader", src.Name(), dst, err}
	}
	return nil
}
