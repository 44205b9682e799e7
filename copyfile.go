// copyfile.go - copy a file via a private read-only mmap of the source
// and a single write to the destination.
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
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
	"os"

	"github.com/opencoff/go-utils"
)

// CopyFile copies the contents of 'src' to 'dst'. The destination is
// created (or truncated) with the permission bits of the source; the
// setuid, setgid and sticky bits are never propagated.
//
// The source is mapped read-only and private, and the mapped region is
// written to the destination with a single write. A zero length source
// produces an empty destination without mapping anything.
//
// Every non-nil error is a *CopyError whose kind is one of ErrSourceOpen,
// ErrSourceStat, ErrDestCreate, ErrMap, ErrShortWrite, ErrXattr or
// ErrDestCommit. The source is opened before the destination is touched;
// after that, unless WithAtomic() is used, a failure leaves the
// destination truncated or partially written.
//
// The source must not be modified while it is being copied; if it
// shrinks after its size is read the outcome is undefined.
func CopyFile(dst, src string, opt ...Option) error {
	o := defaultOpts()
	for _, fp := range opt {
		fp(&o)
	}

	s, err := os.Open(src)
	if err != nil {
		return &CopyError{ErrSourceOpen, "open-src", src, dst, err}
	}

	defer s.Close()

	fi, err := Fstat(s)
	if err != nil {
		return &CopyError{ErrSourceStat, "stat-src", src, dst, err}
	}

	d, err := openDest(dst, fi.Perm(), &o)
	if err != nil {
		return &CopyError{ErrDestCreate, "create-dst", src, dst, err}
	}

	defer d.Abort()

	o.log.Debug("copy %s -> %s: %s, mode %s", src, dst,
		utils.HumanizeSize(uint64(fi.Size())), fi.Perm())

	// the mapping is released before d and s are closed
	if err = copyViaMmap(d, d.file().Name(), s, fi.Size()); err != nil {
		return err
	}

	if o.xattr {
		if err = copyXattr(d.file(), s); err != nil {
			return err
		}
	}

	if err = d.Close(); err != nil {
		return &CopyError{ErrDestCommit, "close-dst", src, dst, err}
	}
	return nil
}
