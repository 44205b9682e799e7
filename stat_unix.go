// stat_unix.go - fstat(2) for unixish platforms
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

//go:build unix

package fcopy

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

func fstatm(fd *os.File, fi *Info) error {
	var st unix.Stat_t

	if err := unix.Fstat(int(fd.Fd()), &st); err != nil {
		return err
	}

	*fi = Info{
		Nam: fd.Name(),
		Siz: st.Size,
		Mod: fs.FileMode(st.Mode & 0777),
	}

	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		fi.Mod |= fs.ModeDir
	case unix.S_IFIFO:
		fi.Mod |= fs.ModeNamedPipe
	case unix.S_IFCHR:
		fi.Mod |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFBLK:
		fi.Mod |= fs.ModeDevice
	case unix.S_IFSOCK:
		fi.Mod |= fs.ModeSocket
	}
	if st.Mode&unix.S_ISGID != 0 {
		fi.Mod |= fs.ModeSetgid
	}
	if st.Mode&unix.S_ISUID != 0 {
		fi.Mod |= fs.ModeSetuid
	}
	if st.Mode&unix.S_ISVTX != 0 {
		fi.Mod |= fs.ModeSticky
	}
	return nil
}
