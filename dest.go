// dest.go - destination file policies
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
	"io"
	"io/fs"
	"os"
)

// destination is an open output file. Close commits it, Abort discards
// whatever the policy allows. The first of Close or Abort wins and the
// other becomes a no-op.
type destination interface {
	io.Writer

	file() *os.File
	Close() error
	Abort()
}

var _ destination = &SafeFile{}
var _ destination = &inPlace{}

// inPlace writes directly to the final path; it is truncated as soon
// as it is opened.
type inPlace struct {
	*os.File

	sync bool
	done bool
}

func openInPlace(nm string, perm fs.FileMode, sync bool) (*inPlace, error) {
	fd, err := os.OpenFile(nm, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, err
	}

	// open(2) ignores 'perm' for an existing file and applies the umask
	// to a new one.
	if err = fd.Chmod(perm); err != nil {
		fd.Close()
		return nil, err
	}

	d := &inPlace{
		File: fd,
		sync: sync,
	}
	return d, nil
}

func (d *inPlace) file() *os.File {
	return d.File
}

func (d *inPlace) Abort() {
	if d.done {
		return
	}
	d.done = true
	d.File.Close()
}

func (d *inPlace) Close() error {
	if d.done {
		return nil
	}
	d.done = true

	if d.sync {
		if err := d.Sync(); err != nil {
			d.File.Close()
			return err
		}
	}
	return d.File.Close()
}

func openDest(nm string, perm fs.FileMode, o *copyopt) (destination, error) {
	if o.atomic {
		sf, err := NewSafeFile(nm, perm)
		if err != nil {
			return nil, err
		}
		return sf, nil
	}

	d, err := openInPlace(nm, perm, o.sync)
	if err != nil {
		return nil, err
	}
	return d, nil
}
