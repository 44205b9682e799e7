// errors.go - descriptive errors for fcopy
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
	"errors"
	"fmt"
)

// Failure kinds returned by CopyFile. Every *CopyError carries exactly
// one of these; use errors.Is to test for them.
var (
	ErrSourceOpen = errors.New("can't open source")
	ErrSourceStat = errors.New("can't stat source")
	ErrDestCreate = errors.New("can't create destination")
	ErrMap        = errors.New("can't map source")
	ErrShortWrite = errors.New("short write")
	ErrXattr      = errors.New("can't copy xattr")
	ErrDestCommit = errors.New("can't commit destination")
)

// CopyError represents the errors returned by CopyFile
type CopyError struct {
	Kind error
	Op   string
	Src  string
	Dst  string
	Err  error
}

// Error returns a string representation of CopyError
func (e *CopyError) Error() string {
	return fmt.Sprintf("fcopy: %s '%s' '%s': %s",
		e.Op, e.Src, e.Dst, e.Err.Error())
}

// Is returns true if 'target' is the failure kind of this error
func (e *CopyError) Is(target error) bool {
	return e.Kind == target
}

// Unwrap returns the underlying wrapped error
func (e *CopyError) Unwrap() error {
	return e.Err
}

var _ error = &CopyError{}

var errAborted = errors.New("safefile: aborted; file not committed")
