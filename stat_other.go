// stat_other.go - fstat for non-unix platforms
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

//go:build !unix

package fcopy

import (
	"os"
)

func fstatm(fd *os.File, fi *Info) error {
	st, err := fd.Stat()
	if err != nil {
		return err
	}

	*fi = Info{
		Nam: fd.Name(),
		Siz: st.Size(),
		Mod: st.Mode(),
	}
	return nil
}
