// info.go - size and mode of an open file
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
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
	"io/fs"
	"os"
)

// Info is the subset of fstat(2) that a copy needs: the byte length
// and the mode (including setuid/setgid/sticky) of the source.
type Info struct {
	Nam string
	Siz int64
	Mod fs.FileMode
}

// Fstat returns the Info of an open file
func Fstat(fd *os.File) (*Info, error) {
	var ii Info
	if err := fstatm(fd, &ii); err != nil {
		return nil, err
	}
	return &ii, nil
}

func (ii *Info) String() string {
	return fmt.Sprintf("%s: %d; %s", ii.Nam, ii.Siz, ii.Mod.String())
}

// Size returns the byte length
func (ii *Info) Size() int64 {
	return ii.Siz
}

// Mode returns the full mode bits
func (ii *Info) Mode() fs.FileMode {
	return ii.Mod
}

// Perm returns the owner/group/other rwx bits; setuid, setgid and
// sticky are stripped.
func (ii *Info) Perm() fs.FileMode {
	return ii.Mod & fs.ModePerm
}
