// options.go - functional options for CopyFile
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

// Logger is the minimal logging interface used by CopyFile. It is
// satisfied by github.com/opencoff/go-logger.
type Logger interface {
	Debug(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

type copyopt struct {
	atomic bool
	sync   bool
	xattr  bool
	log    Logger
}

func defaultOpts() copyopt {
	return copyopt{
		log: nopLogger{},
	}
}

// Option captures the various options for copying a file.
type Option func(o *copyopt)

// WithAtomic stages the copy in a temporary file next to the
// destination and renames it into place only on success. Without this
// option, the destination is truncated before the data is copied and a
// failed copy leaves it empty or partially written.
func WithAtomic() Option {
	return func(o *copyopt) {
		o.atomic = true
	}
}

// WithSync flushes the destination to stable storage before closing it.
// Atomic copies are always synced before the rename.
func WithSync() Option {
	return func(o *copyopt) {
		o.sync = true
	}
}

// WithXattr copies the extended attributes of the source to the
// destination. Filesystems without xattr support are silently skipped.
func WithXattr() Option {
	return func(o *copyopt) {
		o.xattr = true
	}
}

// WithLogger traces each copy at debug level to 'l'.
func WithLogger(l Logger) Option {
	return func(o *copyopt) {
		if l != nil {
			o.log = l
		}
	}
}
