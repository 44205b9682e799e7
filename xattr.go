// xattr.go - extended attribute support
//
// (c) 2023- Sudhi Herle <sudhi@herle.net>
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
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/pkg/xattr"
)

// Xattr is a collection of all the extended attributes of a given file
type Xattr map[string]string

// String returns the string representation of all the extended attributes
func (x Xattr) String() string {
	keys := make([]string, 0, len(x))
	for k := range x {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s=%s\n", k, x[k]))
	}
	return s.String()
}

// Equal returns true if all xattr of 'x' is the same as all the
// xattr of 'y' and returns false otherwise.
func (x Xattr) Equal(y Xattr) bool {
	if len(x) != len(y) {
		return false
	}
	for k, a := range x {
		if b, ok := y[k]; !ok || a != b {
			return false
		}
	}
	return true
}

// FgetXattr returns all the extended attributes of an open file.
func FgetXattr(fd *os.File) (Xattr, error) {
	keys, err := xattr.FList(fd)
	if err != nil {
		return nil, err
	}

	x := make(Xattr, len(keys))
	for _, k := range keys {
		b, err := xattr.FGet(fd, k)
		if err != nil {
			return nil, err
		}
		x[k] = string(b)
	}
	return x, nil
}

// FsetXattr sets/updates the xattr list of an open file.
func FsetXattr(fd *os.File, x Xattr) error {
	for k, v := range x {
		if err := xattr.FSet(fd, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// copy every xattr of src to dst; either side lacking support is not
// an error.
func copyXattr(dst, src *os.File) error {
	if !xattr.XATTR_SUPPORTED {
		return nil
	}

	x, err := FgetXattr(src)
	if err != nil {
		if notsup(err) {
			return nil
		}
		return &CopyError{ErrXattr, "getxattr", src.Name(), dst.Name(), err}
	}

	if err = FsetXattr(dst, x); err != nil {
		if notsup(err) {
			return nil
		}
		return &CopyError{ErrXattr, "setxattr", src.Name(), dst.Name(), err}
	}
	return nil
}

func notsup(err error) bool {
	return errors.Is(err, syscall.ENOTSUP)
}
